package engine

import (
	"pathfinder/internal/catalog"
	"pathfinder/internal/model"
	"pathfinder/internal/quiz"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalibrateDataPuzzle(t *testing.T) {
	got := Calibrate(model.AnswerMap{3: "Data Puzzle"})

	assert.Equal(t, Vector{
		"Problem Solving":       1.0,
		"Analytical Reasoning":  1.0,
		"Logical Reasoning":     1.0,
		"Quantitative Analysis": 1.0,
	}, got)
}

func TestCalibrateAccumulatesAcrossAnswers(t *testing.T) {
	got := Calibrate(model.AnswerMap{
		3: "Data Puzzle",
		4: "Numbers & Data",
		5: "Leadership",
	})

	assert.Equal(t, 2.0, got["Quantitative Analysis"])
	assert.Equal(t, 1.0, got["Mathematics"])
	assert.Equal(t, 1.0, got["Leadership"])
}

func TestCalibrateIgnoresFreeTextAndUnknownValues(t *testing.T) {
	got := Calibrate(model.AnswerMap{
		1: "I love biology and drawing",
		2: "data puzzle",
		9: "Something else",
	})

	assert.Empty(t, got)
}

func TestCalibrateIsDeterministic(t *testing.T) {
	answers := model.AnswerMap{1: "Math", 3: "Team Vision", 4: "People & Teams", 5: "Impact"}

	assert.Equal(t, Calibrate(answers), Calibrate(answers))
}

func TestCalibrationTableUsesVocabularyOnly(t *testing.T) {
	for value, traits := range choiceTraits {
		for _, trait := range traits {
			assert.True(t, catalog.IsTrait(trait), "%s -> %s", value, trait)
		}
	}
}

func TestEveryScheduledChoiceIsCalibrated(t *testing.T) {
	calibrated := CalibratedValues()
	assert.Len(t, calibrated, len(choiceTraits))
	for _, track := range []model.Track{model.TrackPreUndergraduate, model.TrackUndergraduate} {
		for _, q := range quiz.Questions(track) {
			for _, opt := range q.Options {
				assert.Contains(t, calibrated, opt.Value)
			}
		}
	}
}
