package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusConnectAPI/handlers"
	"campusConnectAPI/middleware"
	"campusConnectAPI/services"

	"campusConnectAPI/internal/storage"

	_ "net/http/pprof"
)

var (
	dbPool             *pgxpool.Pool
	store              storage.Store
	pointsService      *services.PointsService
	leaderboardService *services.LeaderboardService
	rewardsService     *services.RewardsService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		// Without a database the API runs on the seeded in-memory
		// store. Fine for demos and local work, not for deployment.
		log.Println("DATABASE_URL not set, using seeded in-memory store")
		store = storage.NewMemoryStore().Seed()
	} else {
		poolConfig, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			log.Fatal("Failed to parse database URL:", err)
		}

		poolConfig.MaxConns = 25
		poolConfig.MinConns = 5
		poolConfig.MaxConnLifetime = time.Hour
		poolConfig.MaxConnIdleTime = 30 * time.Minute
		poolConfig.HealthCheckPeriod = time.Minute

		dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Fatal("Failed to create connection pool:", err)
		}

		if err := dbPool.Ping(ctx); err != nil {
			log.Fatal("Failed to ping database:", err)
		}

		store, err = storage.NewPostgresStore(ctx, dbPool)
		if err != nil {
			log.Fatal("Failed to initialize storage:", err)
		}

		log.Println("Successfully connected to Postgres")
	}

	pointsService = services.NewPointsService(store)
	leaderboardService = services.NewLeaderboardService(store)
	rewardsService = services.NewRewardsService(store)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing store...")
		store.Close()
	}()

	// First snapshot so leaderboard queries work before any manual
	// refresh.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := leaderboardService.Refresh(ctx); err != nil {
			log.Printf("Warning: initial leaderboard refresh failed: %v", err)
		}
		cancel()
	}

	pointsHandler := handlers.NewPointsHandler(pointsService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	rewardsHandler := handlers.NewRewardsHandler(rewardsService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if dbPool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := dbPool.Ping(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "campus-connect-api"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/points/award", pointsHandler.AwardPoints).Methods("POST")
	api.HandleFunc("/points/{userId}", pointsHandler.GetUserPoints).Methods("GET")
	api.HandleFunc("/points/{userId}/history", pointsHandler.GetPointsHistory).Methods("GET")

	api.HandleFunc("/leaderboard", leaderboardHandler.GetGlobalLeaderboard).Methods("GET")
	api.HandleFunc("/leaderboard/top", leaderboardHandler.GetTopUsers).Methods("GET")
	api.HandleFunc("/leaderboard/user/{userId}", leaderboardHandler.GetUserRank).Methods("GET")
	api.HandleFunc("/leaderboard/refresh", leaderboardHandler.RefreshLeaderboard).Methods("POST")

	api.HandleFunc("/rewards", rewardsHandler.GetAllRewards).Methods("GET")
	api.HandleFunc("/rewards/redeem", rewardsHandler.RedeemReward).Methods("POST")
	api.HandleFunc("/rewards/user/{userId}/redemptions", rewardsHandler.GetUserRedemptions).Methods("GET")
	api.HandleFunc("/rewards/{rewardId}", rewardsHandler.GetRewardByID).Methods("GET")

	// CORS configuration
	allowedOrigins := []string{"*"}
	if origins := os.Getenv("CORS_ORIGIN"); origins != "" {
		allowedOrigins = allowedOrigins[:0]
		for _, o := range strings.Split(origins, ",") {
			allowedOrigins = append(allowedOrigins, strings.TrimSpace(o))
		}
	}

	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins(allowedOrigins),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Pprof-Secret"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorilllaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
