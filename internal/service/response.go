package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahstack/shopchat/internal/llm"
	"github.com/ahstack/shopchat/internal/logger"
	"github.com/ahstack/shopchat/internal/models"
)

// Apology is the canned degraded answer. The chat endpoint guarantees a
// response body, so this is what goes out whenever synthesis cannot.
const Apology = "Sorry, I'm having trouble looking that up right now. Please try again in a moment."

// ResponseService turns the user message plus a resolved fact set into a
// natural-language answer grounded only in those facts.
type ResponseService interface {
	Synthesize(ctx context.Context, message string, facts models.FactSet) (string, error)
}

const responsePromptTemplate = `You are an e-commerce chatbot assistant.
Given the user's message and the product facts below, provide a concise, human-readable response in 1-2 sentences.

- Answer ONLY from the product facts. Never invent prices, ratings or stock numbers.
- Include the product name, price, rating and shipping or warranty info when present in the facts.
- Do NOT include extra commentary or greetings.
- If the facts say no product data was found, politely say that you don't have information on this product.

User message: %q

Product facts:
%s`

type responseService struct {
	llm    llm.Client
	logger logger.Logger
}

// NewResponseService wires the completion client.
func NewResponseService(client llm.Client, log logger.Logger) ResponseService {
	return &responseService{
		llm:    client,
		logger: log.With(map[string]interface{}{"component": "response"}),
	}
}

// Synthesize sends the grounding prompt to the model. A malformed or empty
// completion degrades to the canned apology; only an unreachable upstream is
// an error.
func (s *responseService) Synthesize(ctx context.Context, message string, facts models.FactSet) (string, error) {
	prompt := fmt.Sprintf(responsePromptTemplate, message, facts.Render())

	reply, err := s.llm.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, llm.Options{
		Temperature: 0.5,
	})
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) {
			return "", fmt.Errorf("synthesize response: %w", err)
		}
		s.logger.Warn("empty completion, using canned apology", map[string]interface{}{"error": err.Error()})
		return Apology, nil
	}
	return reply, nil
}
