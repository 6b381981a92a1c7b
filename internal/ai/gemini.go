package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bootforge/bootforge/internal/branding"
	"github.com/bootforge/bootforge/internal/config"
	"github.com/bootforge/bootforge/internal/userdata"
	genai "google.golang.org/genai"
)

// ErrEmptyResponse is returned when the backend answers without text.
var ErrEmptyResponse = errors.New("generation returned no text")

// Generator turns a prompt pair into a Markdown document.
type Generator interface {
	Generate(ctx context.Context, req PromptRequest) (string, error)
}

// GeminiGenerator is a thin wrapper around the genai client.
type GeminiGenerator struct {
	cli         *genai.Client
	model       string
	temperature float32
}

// NewGeminiGenerator creates a client for settings. The API key comes from
// settings, then from <userdata>/env/ai.env; when neither has one the genai
// client falls back to GEMINI_API_KEY / GOOGLE_API_KEY.
func NewGeminiGenerator(ctx context.Context, settings config.AI) (*GeminiGenerator, error) {
	key := settings.APIKey
	if key == "" {
		v, err := userdata.LookupEnv(userdata.AIEnvVendor, branding.EnvVar("AI_API_KEY"))
		if err != nil {
			return nil, err
		}
		key = v
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: key, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("creating generation client: %w", err)
	}
	return &GeminiGenerator{cli: cli, model: settings.Model, temperature: settings.Temperature}, nil
}

// Name reports the backend and model.
func (g *GeminiGenerator) Name() string { return "Gemini:" + g.model }

// Generate sends one request. There is no retry; ctx bounds the call.
func (g *GeminiGenerator) Generate(ctx context.Context, req PromptRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(req.User, genai.RoleUser)},
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("generating with %s: %w", g.model, err)
	}
	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && !p.Thought {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
