package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/ieltsprep/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// TextGenerator turns a prompt into free text. Implementations must be safe for
// concurrent use.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiTextGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiTextGenerator returns a generator backed by Gemini. Without an API
// key it returns a generator that always reports ErrAIUnavailable.
func NewGeminiTextGenerator(cfg *config.Config) (TextGenerator, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Writing feedback will be unavailable.")
		return &geminiTextGenerator{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Gemini.Model)
	model.SetTemperature(0.2)
	return &geminiTextGenerator{client: client, model: model}, nil
}

func (g *geminiTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.model == nil {
		return "", ErrAIUnavailable
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during generation")
		return "", fmt.Errorf("%w: %w", ErrAIUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", ErrAIUnavailable)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: gemini returned no text content", ErrAIUnavailable)
	}
	return sb.String(), nil
}

// Close releases the underlying client.
func (g *geminiTextGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
