// Package drafting produces the prose of event and annual reports, either
// through a Gemini model or offline from the prompt outline.
package drafting

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

var ErrEmptyDraft = errors.New("drafting: model returned no text")

// Drafter turns a prompt into report markdown.
type Drafter interface {
	Draft(ctx context.Context, prompt string) (string, error)
}

type GeminiConfig struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint.
	BaseURL    string
	HTTPClient *http.Client

	Temperature     float32
	MaxOutputTokens int32
}

// GeminiDrafter drafts with the Gemini API.
type GeminiDrafter struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func NewGeminiDrafter(ctx context.Context, cfg GeminiConfig) (*GeminiDrafter, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("drafting: gemini api key is required")
	}
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	gc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(
			"You write formal reports for a college administration. Answer in markdown.", genai.RoleUser),
	}
	if cfg.Temperature > 0 {
		gc.Temperature = genai.Ptr(cfg.Temperature)
	}
	if cfg.MaxOutputTokens > 0 {
		gc.MaxOutputTokens = cfg.MaxOutputTokens
	}
	return &GeminiDrafter{client: client, model: model, config: gc}, nil
}

func (d *GeminiDrafter) Draft(ctx context.Context, prompt string) (string, error) {
	log := slogx.FromContext(ctx)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := d.client.Models.GenerateContent(ctx, d.model, contents, d.config)
	if err != nil {
		log.Warn("Draft generation failed", "model", d.model, "error", err)
		return "", fmt.Errorf("drafting: generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyDraft
	}
	log.Debug("Draft generated", "model", d.model, "chars", len(text))
	return text, nil
}

// OfflineDrafter returns the outline embedded in the prompt with the
// instruction lines removed. It makes report generation work without a
// model and keeps output deterministic.
type OfflineDrafter struct{}

func (OfflineDrafter) Draft(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	outline, ok := Outline(prompt)
	if !ok {
		return "", ErrEmptyDraft
	}
	var b strings.Builder
	for line := range strings.SplitSeq(outline, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyDraft
	}
	return text, nil
}

// Outline returns the text between the first pair of "---" lines.
func Outline(prompt string) (string, bool) {
	lines := strings.Split(prompt, "\n")
	start := -1
	for i, l := range lines {
		if strings.TrimSpace(l) != "---" {
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		return strings.Join(lines[start+1:i], "\n"), true
	}
	return "", false
}

// Fallback drafts with primary and falls back to secondary when primary
// fails. Context cancellation is not retried.
type Fallback struct {
	Primary   Drafter
	Secondary Drafter
}

func (f Fallback) Draft(ctx context.Context, prompt string) (string, error) {
	text, err := f.Primary.Draft(ctx, prompt)
	if err == nil || f.Secondary == nil || ctx.Err() != nil {
		return text, err
	}
	slogx.FromContext(ctx).Warn("Falling back to offline draft", "error", err)
	return f.Secondary.Draft(ctx, prompt)
}
