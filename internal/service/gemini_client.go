package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"pathfinder/internal/config"
	"pathfinder/internal/logger"
	"pathfinder/internal/metrics"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const geminiBreakerName = "gemini-api"

// APIError is a non-2xx reply from the Gemini API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error %d: %s", e.StatusCode, e.Body)
}

// Quota reports whether the API rejected the call for rate or quota reasons.
func (e *APIError) Quota() bool {
	return e.StatusCode == http.StatusTooManyRequests || strings.Contains(e.Body, "RESOURCE_EXHAUSTED")
}

func isQuotaError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Quota()
}

// Schema is the subset of the OpenAPI schema object accepted as a
// responseSchema.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
	Temperature      float64 `json:"temperature"`
}

type generateRequest struct {
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

// GeminiCall is one structured-output generateContent request.
type GeminiCall struct {
	Kind        string // metrics/log label: "extract" or "narrate"
	Model       string
	System      string
	Prompt      string
	Schema      *Schema
	Temperature float64
}

// GeminiClient sends generateContent requests through a rate limiter and a
// circuit breaker.
type GeminiClient struct {
	config  config.AIConfig
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[string]
	log     *logger.Logger
}

// NewGeminiClient creates a client for cfg. The HTTP client may be nil.
func NewGeminiClient(cfg config.AIConfig, httpClient *http.Client, log *logger.Logger) *GeminiClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}
	log = log.With("component", "gemini")

	metrics.CircuitBreakerState.WithLabelValues(geminiBreakerName).Set(0)
	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        geminiBreakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// A caller giving up is not a fault of the API.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change", "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &GeminiClient{
		config:  cfg,
		client:  httpClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker: breaker,
		log:     log,
	}
}

// Enabled reports whether an API key is configured.
func (c *GeminiClient) Enabled() bool {
	return c.config.IsEnabled()
}

// Generate runs call and returns the text of the first candidate with any
// markdown code fence removed.
func (c *GeminiClient) Generate(ctx context.Context, call GeminiCall) (string, error) {
	if !c.config.IsEnabled() {
		return "", ErrAIDisabled
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return c.breaker.Execute(func() (string, error) {
		return c.do(ctx, call)
	})
}

func (c *GeminiClient) do(ctx context.Context, call GeminiCall) (string, error) {
	reqBody := generateRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: call.Prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   call.Schema,
			Temperature:      call.Temperature,
		},
	}
	if call.System != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: call.System}}}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", c.config.ModelEndpoint(call.Model), c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordLLMCall(call.Kind, 0, time.Since(start))
		return "", err
	}
	defer resp.Body.Close()
	metrics.RecordLLMCall(call.Kind, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		c.log.Warn("gemini call rejected", "kind", call.Kind, "status", resp.StatusCode)
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response from Gemini", ErrMalformedResponse)
	}

	c.log.Debug("gemini call completed", "kind", call.Kind, "model", call.Model, "duration", time.Since(start))
	return stripCodeFence(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	}
	return 0
}
