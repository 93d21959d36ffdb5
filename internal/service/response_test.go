package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahstack/shopchat/internal/llm"
	"github.com/ahstack/shopchat/internal/logger"
	"github.com/ahstack/shopchat/internal/models"
)

func TestSynthesize_PromptCarriesOnlyTheFactSet(t *testing.T) {
	fake := &fakeLLM{reply: "The iPhone 9 costs 549 and is rated 4.69."}
	svc := NewResponseService(fake, logger.NewTestLogger(t))

	resolver := NewFactResolver()
	facts := resolver.Resolve(models.Intent{Goal: models.GoalPriceQuery, Entity: "iphone 9"}, sampleCatalog())

	_, err := svc.Synthesize(context.Background(), "price of iPhone 9?", facts)
	require.NoError(t, err)

	require.Len(t, fake.lastMessages, 1)
	prompt := fake.lastMessages[0].Content
	assert.Contains(t, prompt, "price of iPhone 9?")
	assert.Contains(t, prompt, "549")
	// Attributes outside the price goal must not leak into the prompt.
	assert.NotContains(t, prompt, "1 year warranty")
	assert.NotContains(t, prompt, "Ships in 1 month")
}

func TestSynthesize_EmptyFactSetStillPrompts(t *testing.T) {
	fake := &fakeLLM{reply: "I'm sorry, I don't have information on that product."}
	svc := NewResponseService(fake, logger.NewTestLogger(t))

	reply, err := svc.Synthesize(context.Background(), "price of flying carpet?", models.FactSet{})
	require.NoError(t, err)
	assert.Contains(t, reply, "don't have information")
	assert.Contains(t, fake.lastMessages[0].Content, "No relevant product data found.")
}

func TestSynthesize_EmptyCompletionFallsBackToApology(t *testing.T) {
	fake := &fakeLLM{err: llm.ErrEmptyCompletion}
	svc := NewResponseService(fake, logger.NewTestLogger(t))

	reply, err := svc.Synthesize(context.Background(), "hi", models.FactSet{})
	require.NoError(t, err)
	assert.Equal(t, Apology, reply)
}

func TestSynthesize_UnavailableIsAnError(t *testing.T) {
	fake := &fakeLLM{err: llm.ErrUnavailable}
	svc := NewResponseService(fake, logger.NewTestLogger(t))

	_, err := svc.Synthesize(context.Background(), "hi", models.FactSet{})
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}
