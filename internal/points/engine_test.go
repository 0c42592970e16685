package points

import "testing"

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		name           string
		category       string
		attended       []string
		isFirstMonthly bool
		want           int
	}{
		{"new category, no multiplier", "social", []string{"academic"}, false, 15},
		{"repeat category with multiplier", "academic", []string{"academic", "social"}, false, 12},
		{"new category bonus", "sports", []string{"academic"}, false, 15},
		{"no bonus for repeat category", "sports", []string{"sports", "academic"}, false, 10},
		{"empty attendance always earns new-category bonus", "social", nil, false, 15},
		{"first monthly bonus", "social", []string{"social"}, true, 25},
		{"both bonuses with multiplier", "academic", []string{"social"}, true, 36},
		{"academic multiplier", "academic", []string{"academic"}, false, 12},
		{"community multiplier", "community", []string{"community"}, false, 15},
		{"cultural multiplier", "cultural", []string{"cultural"}, false, 11},
		{"social has no effective multiplier", "social", []string{"social"}, false, 10},
		{"sports has no effective multiplier", "sports", []string{"sports"}, false, 10},
		{"maximum combination", "community", nil, true, 45},
		{"rounded decimal result", "academic", nil, true, 36},
		{"unknown category skips multiplier", "unknown", []string{"academic"}, false, 15},
		{"unknown category keeps both bonuses", "esports", nil, true, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePoints(tt.category, tt.attended, tt.isFirstMonthly)
			if got != tt.want {
				t.Errorf("CalculatePoints(%q, %v, %v) = %d, want %d",
					tt.category, tt.attended, tt.isFirstMonthly, got, tt.want)
			}
		})
	}
}

func TestCalculatePointsRoundsHalfUp(t *testing.T) {
	// 10 base + 15 first-monthly = 25, times 1.5 = 37.5, which must
	// round up to 38 rather than to even.
	got := CalculatePoints("community", []string{"community"}, true)
	if got != 38 {
		t.Errorf("expected 37.5 to round up to 38, got %d", got)
	}
}

func TestBonusLabel(t *testing.T) {
	if label := BonusLabel("social", []string{"social"}, false); label != nil {
		t.Errorf("expected no bonus label, got %q", *label)
	}

	label := BonusLabel("social", []string{"academic"}, false)
	if label == nil || *label != BonusNewCategory {
		t.Errorf("expected new_category label, got %v", label)
	}

	// first_monthly wins the label even when the new-category bonus
	// also contributed points.
	label = BonusLabel("social", []string{"academic"}, true)
	if label == nil || *label != BonusFirstMonthly {
		t.Errorf("expected first_monthly label, got %v", label)
	}
}

func TestCategoryMultiplier(t *testing.T) {
	if m := CategoryMultiplier("academic"); m != 1.2 {
		t.Errorf("academic multiplier = %v, want 1.2", m)
	}
	if m := CategoryMultiplier("does-not-exist"); m != 1.0 {
		t.Errorf("unknown category multiplier = %v, want 1.0", m)
	}
	if len(Categories()) != 5 {
		t.Errorf("expected 5 categories, got %d", len(Categories()))
	}
}
