// Package gemini talks to the Gemini generative-language API to produce
// interview questions and score answers. Every remote call degrades to the
// deterministic fallback heuristics instead of surfacing an error to the
// session.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/mkravets/talentscout/internal/logger"
)

const (
	defaultModel = "gemini-2.0-flash"

	// A single blocking call per user input; no retries on failure.
	requestTimeout = 30 * time.Second

	defaultMaxLogLength = 200
)

// contentGenerator is the seam between the prompt/parse logic and the genai
// backend, so tests can stub the remote service.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Client generates interview questions and evaluates answers. A Client with
// no credential is valid: all calls take the deterministic fallback path.
type Client struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewClient creates a Client backed by the Gemini API. An empty apiKey is
// not an error; the returned Client serves every request from the fallback
// catalog and scorer.
func NewClient(ctx context.Context, apiKey, model string, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if strings.TrimSpace(apiKey) == "" {
		log.Info("gemini api key is not configured, using deterministic fallbacks")
		return &Client{logger: log, maxLogLen: defaultMaxLogLength}, nil
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	log = log.With(zap.String("provider", "gemini"), zap.String("model", model))

	return &Client{
		generator: &genaiGenerator{client: client, model: model},
		logger:    log,
		maxLogLen: defaultMaxLogLength,
	}, nil
}

// genaiGenerator adapts the genai SDK to the contentGenerator seam.
type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

// attempt runs one remote call and routes its outcome: transient upstream
// failures (and a missing credential) go to the deterministic fallback,
// anything else produces a degraded result embedding the failure. Both call
// sites share this logic so fallback triggering stays identical.
func attempt[T any](ctx context.Context, gen contentGenerator, prompt string, parse func(raw string) T, fallbackFn func() T, degraded func(err error) T) T {
	if gen == nil {
		return fallbackFn()
	}

	raw, err := gen.GenerateContent(ctx, prompt)
	if err != nil {
		if isTransient(err) {
			return fallbackFn()
		}
		return degraded(err)
	}

	return parse(raw)
}

// isTransient reports whether the error carries a rate-limit or overload
// signature. Only those failures are hidden behind the fallback; everything
// else is surfaced as a degraded result.
func isTransient(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code == http.StatusServiceUnavailable
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "quota")
}

func (c *Client) debugPreview(msg, payload string) {
	c.logger.Debug(msg, zap.String("preview", logger.TruncateForLog(payload, c.maxLogLen)))
}
