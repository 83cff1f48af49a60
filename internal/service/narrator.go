package service

import (
	"context"
	"fmt"
	"pathfinder/internal/config"
	"pathfinder/internal/engine"
	"pathfinder/internal/model"
	"pathfinder/internal/validation"

	"github.com/goccy/go-json"
)

// NarrativeRequest is what the narrative step sees of an analysis run
type NarrativeRequest struct {
	Track             model.Track
	Transcript        string
	Candidates        []engine.ScoredCandidate
	DegreePreference  string
	SubjectPreference string
	CustomCatalog     bool
}

// Narrator writes the final report from the ranked candidates.
type Narrator interface {
	Narrate(ctx context.Context, req NarrativeRequest) (*model.AnalysisResult, error)
}

// GeminiNarrator implements Narrator with one Gemini call and no retry.
type GeminiNarrator struct {
	client *GeminiClient
	model  string
}

func NewGeminiNarrator(client *GeminiClient, cfg config.AIConfig) *GeminiNarrator {
	return &GeminiNarrator{client: client, model: cfg.Models.Narrate}
}

func (n *GeminiNarrator) Narrate(ctx context.Context, req NarrativeRequest) (*model.AnalysisResult, error) {
	temperature := narrateTemperature
	if req.CustomCatalog {
		temperature = narrateCustomTemperature
	}

	text, err := n.client.Generate(ctx, GeminiCall{
		Kind:        "narrate",
		Model:       n.model,
		System:      narrativeSystem,
		Prompt:      narrativePrompt(req),
		Schema:      narrativeSchema(),
		Temperature: temperature,
	})
	if err != nil {
		return nil, err
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validation.Struct(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &result, nil
}
