package validation

import (
	"pathfinder/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraitTag(t *testing.T) {
	ok := model.SemanticProfile{Traits: []model.TraitWeight{{Name: "Biology", Weight: 0.9}}}
	bad := model.SemanticProfile{Traits: []model.TraitWeight{{Name: "Telepathy", Weight: 0.9}}}

	assert.NoError(t, Struct(&ok))

	err := Struct(&bad)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "trait", verr.Fields[0].Tag)
	assert.Contains(t, verr.Fields[0].Message, "traits[0].name is not a known trait")
}

func TestWeightRange(t *testing.T) {
	p := model.SemanticProfile{Traits: []model.TraitWeight{{Name: "Biology", Weight: 1.5}}}

	err := Struct(&p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "less than or equal to 1")
}

func TestRequestMessages(t *testing.T) {
	err := Struct(&model.AnswerRequest{})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "AnswerRequest.answer", verr.Fields[0].Field)
	assert.Equal(t, "AnswerRequest.answer is required", verr.Error())
}

func TestAnalysisResultShape(t *testing.T) {
	result := model.AnalysisResult{
		Archetype:           model.Archetype{Title: "The Builder", Description: "d"},
		VisionBoard:         model.VisionBoard{FutureSelf: "f"},
		SkillSignature:      make([]model.SkillScore, 5),
		Recommendations:     []model.Recommendation{{CourseName: "BBA"}},
		AlternativePathways: []model.Alternative{{CourseName: "BA"}},
		CommunityStats:      model.CommunityStats{Headline: "h"},
	}
	for i := range result.SkillSignature {
		result.SkillSignature[i] = model.SkillScore{Subject: "s", A: 50, FullMark: 100}
	}

	err := Struct(&result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 6 items")

	result.SkillSignature = append(result.SkillSignature, model.SkillScore{Subject: "s", A: 10})
	assert.NoError(t, Struct(&result))
}
