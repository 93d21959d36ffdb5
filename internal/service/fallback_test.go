package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahstack/shopchat/internal/models"
)

func TestFallbackParser(t *testing.T) {
	var p fallbackParser

	tests := []struct {
		name    string
		message string
		goal    models.Goal
		entity  string
	}{
		{"price of", "What's the price of iPhone 9?", models.GoalPriceQuery, "iphone 9"},
		{"how much is", "how much is the MacBook Pro", models.GoalPriceQuery, "the macbook pro"},
		{"availability", "Do you have any laptops?", models.GoalAvailability, "any laptops"},
		{"reviews", "tell me the reviews for perfume oil", models.GoalReviewRequest, "perfume oil"},
		{"category browse", "show me electronics", models.GoalCategoryQuery, "electronics"},
		{"unknown", "tell me a joke", models.GoalUnknown, ""},
		{"empty", "", models.GoalUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := p.Parse(tt.message)
			assert.Equal(t, tt.goal, intent.Goal)
			assert.Equal(t, tt.entity, intent.Entity)
		})
	}
}

func TestFallbackParser_RatingThreshold(t *testing.T) {
	var p fallbackParser

	intent := p.Parse("Show me electronics with ratings above 4.5")
	assert.Equal(t, models.GoalRatingFilter, intent.Goal)
	require.NotNil(t, intent.Criteria.MinRating)
	assert.Equal(t, 4.5, *intent.Criteria.MinRating)
	assert.Equal(t, "electronics", intent.Entity)
}

func TestFallbackParser_IsDeterministic(t *testing.T) {
	var p fallbackParser

	first := p.Parse("what is the price of iPhone 9")
	second := p.Parse("what is the price of iPhone 9")
	assert.Equal(t, first, second)
}
