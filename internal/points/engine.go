package points

import "math"

const (
	basePoints        = 10
	newCategoryBonus  = 5
	firstMonthlyBonus = 15
)

// CalculatePoints computes the points earned for one event attendance.
//
// Base points plus bonuses are summed first, then the category
// multiplier is applied once to the bonus-inclusive total. Rounding is
// half-up (37.5 rounds to 38). Unknown categories get no multiplier
// but the bonuses still apply. Inputs are caller-validated; the
// calculation itself has no failure modes.
func CalculatePoints(eventCategory string, categoriesAttended []string, isFirstMonthly bool) int {
	total := basePoints

	if !containsCategory(categoriesAttended, eventCategory) {
		total += newCategoryBonus
	}

	if isFirstMonthly {
		total += firstMonthlyBonus
	}

	if c, ok := eventCategories[eventCategory]; ok {
		total = roundHalfUp(float64(total) * c.Multiplier)
	}

	return total
}

// BonusLabel picks the bonus type reported on a transaction. When both
// bonuses contribute points, first_monthly takes label precedence.
func BonusLabel(eventCategory string, categoriesAttended []string, isFirstMonthly bool) *string {
	if isFirstMonthly {
		label := BonusFirstMonthly
		return &label
	}
	if !containsCategory(categoriesAttended, eventCategory) {
		label := BonusNewCategory
		return &label
	}
	return nil
}

func containsCategory(categories []string, id string) bool {
	for _, c := range categories {
		if c == id {
			return true
		}
	}
	return false
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
