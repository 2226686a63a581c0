// Package suggest produces AI text suggestions: quotes, subscription
// insights, account parsing and portfolio answers. Every operation has a
// static fallback, so callers never see an error.
package suggest

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNoAPIKey is returned by NewGenAIGenerator when no key is configured.
var ErrNoAPIKey = errors.New("no API key configured")

// Generator runs one text generation request.
type Generator interface {
	Generate(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error)
}

// GenAIGenerator calls the Gemini API.
type GenAIGenerator struct {
	client *genai.Client
}

func NewGenAIGenerator(ctx context.Context, apiKey string) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GenAIGenerator{client: c}, nil
}

func (g *GenAIGenerator) Generate(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
