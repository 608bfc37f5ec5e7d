// Package llm is the gateway to the generation service. It owns prompt
// construction and error classification; callers never see the SDK.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// ErrNotConfigured means generation is unavailable because no API key
// is present. Callers treat this as a configuration problem, not a
// transient failure.
var ErrNotConfigured = errors.New("llm: GEMINI_API_KEY is not set")

// UpstreamError wraps a failure from the generation service itself.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("llm: %s: %v", e.Op, e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }

type Config struct {
	// APIKey overrides the GEMINI_API_KEY env var.
	APIKey string
	Model  string
}

// Generator is what the web server and TUI depend on; *Client is the
// real implementation.
type Generator interface {
	Activities(ctx context.Context, planContext string) (string, error)
	Rubric(ctx context.Context, req RubricRequest) (string, error)
}

type Client struct {
	cli   *genai.Client
	model string
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		key = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	if key == "" {
		return nil, ErrNotConfigured
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create client: %w", err)
	}
	return &Client{cli: cli, model: model}, nil
}

// Activities generates free-form activity ideas for the given plan
// context payload.
func (c *Client) Activities(ctx context.Context, planContext string) (string, error) {
	full := activitiesSystemPrompt + "\n\n" + activitiesUserMessage(planContext)
	resp, err := c.cli.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{Parts: []*genai.Part{{Text: full}}},
	}, nil)
	if err != nil {
		return "", &UpstreamError{Op: "generate activities", Err: err}
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &UpstreamError{Op: "generate activities", Err: errors.New("empty response")}
	}
	return text, nil
}

// Rubric generates an analytic rubric. The response is requested as
// JSON but returned raw: parsing (and the prose fallback on parse
// failure) is the caller's concern.
func (c *Client) Rubric(ctx context.Context, req RubricRequest) (string, error) {
	full := rubricSystemPrompt + "\n\n" + rubricUserMessage(req)
	resp, err := c.cli.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{Parts: []*genai.Part{{Text: full}}},
	}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", &UpstreamError{Op: "generate rubric", Err: err}
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &UpstreamError{Op: "generate rubric", Err: errors.New("empty response")}
	}
	return text, nil
}
