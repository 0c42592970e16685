package points

// EventCategory is one entry of the fixed category table used for
// point multipliers. The table is a closed set and is not editable at
// runtime.
type EventCategory struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

var eventCategories = map[string]EventCategory{
	"academic":  {ID: "academic", Name: "Academic", Multiplier: 1.2},
	"social":    {ID: "social", Name: "Social", Multiplier: 1.0},
	"sports":    {ID: "sports", Name: "Sports", Multiplier: 1.0},
	"community": {ID: "community", Name: "Community Service", Multiplier: 1.5},
	"cultural":  {ID: "cultural", Name: "Cultural", Multiplier: 1.1},
}

// CategoryMultiplier returns the multiplier for a category id, or 1.0
// when the category is unknown.
func CategoryMultiplier(categoryID string) float64 {
	if c, ok := eventCategories[categoryID]; ok {
		return c.Multiplier
	}
	return 1.0
}

// Categories returns a copy of the category table.
func Categories() []EventCategory {
	out := make([]EventCategory, 0, len(eventCategories))
	for _, c := range eventCategories {
		out = append(out, c)
	}
	return out
}
