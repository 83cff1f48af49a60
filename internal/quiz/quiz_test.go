package quiz

import (
	"pathfinder/internal/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedules(t *testing.T) {
	for _, track := range []model.Track{model.TrackPreUndergraduate, model.TrackUndergraduate} {
		qs := Questions(track)
		require.Len(t, qs, 5, track)
		for i, q := range qs {
			assert.Equal(t, i+1, q.ID)
			assert.NotEmpty(t, q.Context)
			if q.InputType == model.InputChoice {
				assert.NotEmpty(t, q.Options)
			}
		}
	}
	assert.Equal(t, model.InputChoice, Questions(model.TrackPreUndergraduate)[2].InputType)
	for _, q := range Questions(model.TrackUndergraduate) {
		assert.Equal(t, model.InputText, q.InputType)
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name    string
		track   model.Track
		id      int
		raw     string
		want    string
		wantErr error
	}{
		{"free text trimmed", model.TrackPreUndergraduate, 1, "  Biology ", "Biology", nil},
		{"choice canonicalized", model.TrackPreUndergraduate, 3, "data puzzle", "Data Puzzle", nil},
		{"choice rejected", model.TrackPreUndergraduate, 4, "Animals", "", ErrInvalidChoice},
		{"empty", model.TrackUndergraduate, 2, "   ", "", ErrEmptyAnswer},
		{"unknown id", model.TrackUndergraduate, 9, "x", "", ErrUnknownQuestion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAnswer(tt.track, tt.id, tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissing(t *testing.T) {
	answers := model.AnswerMap{1: "Math", 3: "Data Puzzle", 4: " "}

	assert.Equal(t, []int{2, 4, 5}, Missing(model.TrackPreUndergraduate, answers))
	assert.Empty(t, Missing(model.TrackUndergraduate, model.AnswerMap{1: "a", 2: "b", 3: "c", 4: "d", 5: "e"}))
}

func TestTranscriptOrdersByQuestion(t *testing.T) {
	answers := model.AnswerMap{
		3: "Data Puzzle",
		1: `I like "Math"`,
		7: "extra",
	}

	lines := strings.Split(Transcript(model.TrackPreUndergraduate, answers), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, `[Favorite Class (Academic Identity)]: "I like \"Math\""`, lines[0])
	assert.Equal(t, `[Ideal Work Day (Task Preference)]: "Data Puzzle"`, lines[1])
	assert.Equal(t, `[Question 7]: "extra"`, lines[2])
}

func TestTranscriptEmpty(t *testing.T) {
	assert.Empty(t, Transcript(model.TrackUndergraduate, nil))
}
