package service

import (
	"context"
	"fmt"
	"pathfinder/internal/config"
	"pathfinder/internal/logger"
	"pathfinder/internal/metrics"
	"pathfinder/internal/model"
	"pathfinder/internal/validation"
	"time"

	"github.com/goccy/go-json"
)

// Extractor turns an answer transcript into weighted traits and keywords.
type Extractor interface {
	Extract(ctx context.Context, transcript string, track model.Track) (*model.SemanticProfile, error)
}

// GeminiExtractor implements Extractor with one structured Gemini call,
// retried on quota errors only.
type GeminiExtractor struct {
	client  *GeminiClient
	model   string
	retries int
	backoff time.Duration
	log     *logger.Logger
}

func NewGeminiExtractor(client *GeminiClient, cfg config.AIConfig, log *logger.Logger) *GeminiExtractor {
	return &GeminiExtractor{
		client:  client,
		model:   cfg.Models.Extract,
		retries: cfg.ExtractRetries,
		backoff: cfg.RetryBackoff,
		log:     log.With("component", "extractor"),
	}
}

func (e *GeminiExtractor) Extract(ctx context.Context, transcript string, track model.Track) (*model.SemanticProfile, error) {
	var lastErr error
	for attempt := 0; attempt <= e.retries; attempt++ {
		if attempt > 0 {
			delay := e.backoff << (attempt - 1)
			e.log.Warn("quota hit, retrying extraction", "attempt", attempt, "of", e.retries, "delay", delay)
			metrics.RecordLLMRetry("extract")
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		profile, err := e.extractOnce(ctx, transcript, track)
		if err == nil {
			return profile, nil
		}
		lastErr = err
		if !isQuotaError(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (e *GeminiExtractor) extractOnce(ctx context.Context, transcript string, track model.Track) (*model.SemanticProfile, error) {
	text, err := e.client.Generate(ctx, GeminiCall{
		Kind:        "extract",
		Model:       e.model,
		System:      extractionSystem,
		Prompt:      extractionPrompt(transcript, track),
		Schema:      extractionSchema(),
		Temperature: extractTemperature,
	})
	if err != nil {
		return nil, err
	}

	var profile model.SemanticProfile
	if err := json.Unmarshal([]byte(text), &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validation.Struct(&profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &profile, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
