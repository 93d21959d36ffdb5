package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ahstack/shopchat/internal/llm"
	"github.com/ahstack/shopchat/internal/logger"
	"github.com/ahstack/shopchat/internal/models"
)

// IntentService extracts a typed Intent from a raw user message.
type IntentService interface {
	// Extract never fails on a malformed completion; it degrades to the
	// fallback parser instead. The returned error is non-nil only when the
	// completion service is unreachable and the fallback finds nothing.
	Extract(ctx context.Context, message string) (models.Intent, error)
}

// intentSchema is the strict shape the model must return. Anything that does
// not validate is discarded and handled by the fallback parser.
const intentSchema = `{
	"type": "object",
	"required": ["intent"],
	"properties": {
		"intent": {
			"type": "string",
			"enum": ["price_query", "availability", "rating_filter", "review_request", "category_query", "general_info", "unknown"]
		},
		"entity": {"type": ["string", "null"]},
		"criteria": {
			"type": ["object", "null"],
			"properties": {
				"min_rating": {"type": ["number", "string", "null"]}
			}
		}
	}
}`

const intentPromptTemplate = `You are an intent and entity extraction assistant for an e-commerce chatbot.
Given the user's message below, output a single JSON object ONLY (no explanation, no extra text).
The JSON must have exactly these keys: "intent", "entity", "criteria".

- "intent" must be one of:
  "price_query", "availability", "rating_filter", "review_request", "category_query", "general_info", "unknown"
- "entity" must be a product name or category string (or null)
- "criteria" must be a JSON object for additional filters (or null)
  e.g. { "min_rating": 4 }

Return examples (JSON only):

Input: "What's the price of iPhone?"
Output:
{
  "intent": "price_query",
  "entity": "iPhone",
  "criteria": null
}

Input: "Show me electronics with ratings above 4"
Output:
{
  "intent": "rating_filter",
  "entity": "electronics",
  "criteria": { "min_rating": 4 }
}

Input: "Do you have any laptops?"
Output:
{
  "intent": "availability",
  "entity": "laptops",
  "criteria": null
}

Now analyze this message and return JSON only:
Message: %q`

// reJSONObject grabs the first-to-last brace span so JSON wrapped in prose
// still parses.
var reJSONObject = regexp.MustCompile(`(?s)\{.*\}`)

type intentService struct {
	llm      llm.Client
	schema   *gojsonschema.Schema
	fallback fallbackParser
	logger   logger.Logger
}

// NewIntentService wires the completion client and compiles the schema.
func NewIntentService(client llm.Client, log logger.Logger) IntentService {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(intentSchema))
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("intent schema invalid: %v", err))
	}
	return &intentService{
		llm:    client,
		schema: schema,
		logger: log.With(map[string]interface{}{"component": "intent"}),
	}
}

func (s *intentService) Extract(ctx context.Context, message string) (models.Intent, error) {
	prompt := fmt.Sprintf(intentPromptTemplate, message)

	raw, err := s.llm.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, llm.Options{
		Temperature: 0,
		MaxTokens:   300,
	})
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) {
			// The fallback parser still lets the request proceed when it
			// recognizes the phrasing; only a double miss bubbles up.
			if intent := s.fallback.Parse(message); intent.Goal != models.GoalUnknown {
				s.logger.Warn("llm unreachable, using fallback intent", map[string]interface{}{
					"goal": string(intent.Goal),
				})
				return intent, nil
			}
			return models.UnknownIntent(), fmt.Errorf("extract intent: %w", err)
		}
		// Empty completion: not an upstream failure, degrade quietly.
		s.logger.Warn("empty completion, using fallback parser", map[string]interface{}{"error": err.Error()})
		return s.fallback.Parse(message), nil
	}

	if intent, ok := s.parse(raw); ok && intent.Goal != models.GoalUnknown {
		return intent, nil
	}

	s.logger.Debug("model output degraded to fallback parser", map[string]interface{}{"raw": raw})
	return s.fallback.Parse(message), nil
}

// parse validates the model output against the schema and normalizes it into
// an Intent. ok is false when nothing usable could be recovered.
func (s *intentService) parse(raw string) (models.Intent, bool) {
	payload := []byte(raw)
	if !json.Valid(payload) {
		m := reJSONObject.FindString(raw)
		if m == "" {
			return models.UnknownIntent(), false
		}
		payload = []byte(m)
	}

	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil || !result.Valid() {
		return models.UnknownIntent(), false
	}

	var parsed struct {
		Intent   string                 `json:"intent"`
		Entity   *string                `json:"entity"`
		Criteria map[string]interface{} `json:"criteria"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return models.UnknownIntent(), false
	}

	intent := models.Intent{Goal: models.Goal(parsed.Intent)}
	if !models.ValidGoal(intent.Goal) {
		intent.Goal = models.GoalUnknown
	}
	if parsed.Entity != nil {
		intent.Entity = strings.TrimSpace(*parsed.Entity)
	}
	if v, ok := parsed.Criteria["min_rating"]; ok {
		if min, ok := toFloat(v); ok {
			intent.Criteria.MinRating = &min
		}
	}
	return intent, true
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
