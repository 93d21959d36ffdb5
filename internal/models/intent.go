package models

// Goal is the closed set of intents the extractor may produce. Anything the
// model returns outside this set is normalized to GoalUnknown.
type Goal string

const (
	GoalPriceQuery    Goal = "price_query"
	GoalAvailability  Goal = "availability"
	GoalRatingFilter  Goal = "rating_filter"
	GoalReviewRequest Goal = "review_request"
	GoalCategoryQuery Goal = "category_query"
	GoalGeneralInfo   Goal = "general_info"
	GoalUnknown       Goal = "unknown"
)

// ValidGoal reports whether g is a member of the closed goal set.
func ValidGoal(g Goal) bool {
	switch g {
	case GoalPriceQuery, GoalAvailability, GoalRatingFilter,
		GoalReviewRequest, GoalCategoryQuery, GoalGeneralInfo, GoalUnknown:
		return true
	}
	return false
}

// Criteria carries optional numeric filters extracted alongside the goal.
type Criteria struct {
	// MinRating is an inclusive lower bound: products with Rating >= MinRating
	// pass the filter.
	MinRating *float64 `json:"min_rating,omitempty"`
}

// Intent is the structured interpretation of one user message. It is produced
// once per request and never mutated afterwards.
type Intent struct {
	Goal     Goal     `json:"intent"`
	Entity   string   `json:"entity,omitempty"` // product name or category, "" when absent
	Criteria Criteria `json:"criteria,omitempty"`
}

// UnknownIntent is the fallback value used when extraction degrades.
func UnknownIntent() Intent {
	return Intent{Goal: GoalUnknown}
}
