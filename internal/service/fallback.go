package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ahstack/shopchat/internal/models"
)

// fallbackParser turns a user message into an Intent with deterministic
// keyword rules. It runs whenever the model's extraction degrades, so the
// pipeline keeps working even with the LLM misbehaving.
type fallbackParser struct{}

var (
	rePrice        = regexp.MustCompile(`(?:price of|price for|how much is|what(?:'s| is) the price of)\s+([\w\s\-]+)\??`)
	reRatingAbove  = regexp.MustCompile(`ratings? (?:above|over|greater than|>=)\s*(\d+(?:\.\d+)?)`)
	reRatingEntity = regexp.MustCompile(`(?:show me|list|find)\s+([\w\s]+?)\s+(?:with|having|that have)\s+rating`)
	reAvailability = regexp.MustCompile(`(?:do you have|have any|in stock|available)\s+([\w\s\-]+)\??`)
	reReview       = regexp.MustCompile(`(?:reviews?|opinions?) (?:for|about)\s+([\w\s\-]+)`)
	reBrowse       = regexp.MustCompile(`(?:show me|list|find|browse)\s+([\w\s]+)`)
)

// knownCategories mirrors the upstream catalog's category names; a browse
// phrase only counts as a category query when it names one of these.
var knownCategories = []string{
	"electronics", "fragrances", "groceries", "laptops", "smartphones", "skincare", "home",
}

func (fallbackParser) Parse(message string) models.Intent {
	text := strings.ToLower(strings.TrimSpace(message))

	if m := rePrice.FindStringSubmatch(text); m != nil {
		return models.Intent{Goal: models.GoalPriceQuery, Entity: strings.TrimSpace(m[1])}
	}

	if m := reRatingAbove.FindStringSubmatch(text); m != nil {
		min, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			intent := models.Intent{Goal: models.GoalRatingFilter, Criteria: models.Criteria{MinRating: &min}}
			if cm := reRatingEntity.FindStringSubmatch(text); cm != nil {
				intent.Entity = strings.TrimSpace(cm[1])
			}
			return intent
		}
	}

	if m := reAvailability.FindStringSubmatch(text); m != nil {
		return models.Intent{Goal: models.GoalAvailability, Entity: strings.TrimSpace(m[1])}
	}

	if m := reReview.FindStringSubmatch(text); m != nil {
		return models.Intent{Goal: models.GoalReviewRequest, Entity: strings.TrimSpace(m[1])}
	}

	if m := reBrowse.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		for _, c := range knownCategories {
			if strings.Contains(candidate, c) {
				return models.Intent{Goal: models.GoalCategoryQuery, Entity: candidate}
			}
		}
	}

	return models.UnknownIntent()
}
