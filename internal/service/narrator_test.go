package service

import (
	"context"
	"io"
	"net/http"
	"pathfinder/internal/catalog"
	"pathfinder/internal/engine"
	"pathfinder/internal/model"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *model.AnalysisResult {
	skills := make([]model.SkillScore, 6)
	for i := range skills {
		skills[i] = model.SkillScore{Subject: "Skill", A: 50 + i, FullMark: 100}
	}
	return &model.AnalysisResult{
		Archetype:      model.Archetype{Title: "The Systems Thinker", Description: "Builds things that last."},
		VisionBoard:    model.VisionBoard{FutureSelf: "Leading a lab.", KeyThemes: []string{"Builder"}},
		SkillSignature: skills,
		Recommendations: []model.Recommendation{
			{Degree: "B.Tech", CourseName: "Invented Course", RelevanceScore: 70},
		},
		AlternativePathways: []model.Alternative{
			{Focus: "Research", CourseName: "Another Invented Course"},
		},
		CommunityStats: model.CommunityStats{Headline: "Peers build things."},
	}
}

func TestNarrateParsesResult(t *testing.T) {
	var got generateRequest
	client, cfg := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		data, _ := json.Marshal(sampleResult())
		io.WriteString(w, geminiReply(string(data)))
	})
	narrator := NewGeminiNarrator(client, cfg)

	result, err := narrator.Narrate(context.Background(), NarrativeRequest{
		Track:      model.TrackPreUndergraduate,
		Transcript: `[Favorite Class]: "Physics"`,
		Candidates: []engine.ScoredCandidate{
			{Program: catalog.Program{Name: "B.Tech Mechanical", Category: "B.Tech"}, Score: 12.5},
		},
		DegreePreference: "engineering",
	})
	require.NoError(t, err)
	assert.Equal(t, "The Systems Thinker", result.Archetype.Title)
	assert.Len(t, result.SkillSignature, 6)

	assert.Equal(t, narrateTemperature, got.GenerationConfig.Temperature)
	prompt := got.Contents[0].Parts[0].Text
	assert.True(t, strings.Contains(prompt, `"B.Tech Mechanical"`))
	assert.True(t, strings.Contains(prompt, "engineering"))
}

func TestNarrateCustomCatalogTemperature(t *testing.T) {
	var got generateRequest
	client, cfg := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		data, _ := json.Marshal(sampleResult())
		io.WriteString(w, geminiReply(string(data)))
	})

	_, err := NewGeminiNarrator(client, cfg).Narrate(context.Background(), NarrativeRequest{
		Track:         model.TrackUndergraduate,
		CustomCatalog: true,
	})
	require.NoError(t, err)
	assert.Equal(t, narrateCustomTemperature, got.GenerationConfig.Temperature)
}

func TestNarrateRejectsIncompleteResult(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *model.AnalysisResult)
	}{
		{"five skills", func(r *model.AnalysisResult) { r.SkillSignature = r.SkillSignature[:5] }},
		{"no recommendations", func(r *model.AnalysisResult) { r.Recommendations = nil }},
		{"missing title", func(r *model.AnalysisResult) { r.Archetype.Title = "" }},
		{"skill over 100", func(r *model.AnalysisResult) { r.SkillSignature[0].A = 140 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sampleResult()
			tt.mutate(result)
			client, cfg := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				data, _ := json.Marshal(result)
				io.WriteString(w, geminiReply(string(data)))
			})

			_, err := NewGeminiNarrator(client, cfg).Narrate(context.Background(), NarrativeRequest{Track: model.TrackUndergraduate})
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestNarrateRejectsNonJSON(t *testing.T) {
	client, cfg := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, geminiReply("Sorry, I cannot help with that."))
	})

	_, err := NewGeminiNarrator(client, cfg).Narrate(context.Background(), NarrativeRequest{Track: model.TrackUndergraduate})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
