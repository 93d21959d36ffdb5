package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

// vertexModel is the generation model used for both extraction and synthesis.
const vertexModel = "gemini-2.0-flash-lite-001"

// VertexClient implements Client using Google's Vertex AI.
type VertexClient struct {
	client *genai.Client
}

// NewVertexClient creates a new Vertex AI chat client. Credentials come from
// GOOGLE_APPLICATION_CREDENTIALS when set, otherwise application default
// credentials.
func NewVertexClient(ctx context.Context, projectID, location string) (*VertexClient, error) {
	var opts []option.ClientOption
	if creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	client, err := genai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return nil, fmt.Errorf("llm: create Vertex AI client: %w", err)
	}

	return &VertexClient{client: client}, nil
}

// Chat implements Client. Messages with the system role become the model's
// system instruction; the rest are flattened into the prompt.
func (c *VertexClient) Chat(ctx context.Context, messages []Message, opts Options) (string, error) {
	model := c.client.GenerativeModel(vertexModel)
	temp := float32(opts.Temperature)
	model.SetTemperature(temp)
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	var prompt strings.Builder
	for _, m := range messages {
		if m.Role == "system" {
			model.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(m.Content)},
			}
			continue
		}
		prompt.WriteString(m.Content)
		prompt.WriteString("\n")
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok || strings.TrimSpace(string(text)) == "" {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(string(text)), nil
}

// Close closes the underlying Vertex AI client.
func (c *VertexClient) Close() error {
	return c.client.Close()
}
