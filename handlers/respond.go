package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"campusConnectAPI/internal/apperr"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithData(w http.ResponseWriter, code int, data any) {
	respondWithJSON(w, code, apiResponse{Success: true, Data: data})
}

func respondWithMessage(w http.ResponseWriter, code int, data any, message string) {
	respondWithJSON(w, code, apiResponse{Success: true, Data: data, Message: message})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]any{"success": false, "error": message})
}

// respondWithServiceError maps the error taxonomy onto status codes.
// Anything untyped is an internal failure and gets a generic message;
// the detail goes to the log only.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var validation *apperr.ValidationError
	var notFound *apperr.NotFoundError
	var conflict *apperr.ConflictError

	switch {
	case errors.As(err, &validation):
		respondWithError(w, http.StatusBadRequest, validation.Message)
	case errors.As(err, &notFound):
		respondWithError(w, http.StatusNotFound, notFound.Message)
	case errors.As(err, &conflict):
		respondWithError(w, http.StatusBadRequest, conflict.Message)
	default:
		log.Printf("Internal error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// queryInt reads an integer query parameter, falling back to def on
// absent or malformed input. Garbage never errors a request.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
