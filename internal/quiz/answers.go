package quiz

import (
	"errors"
	"fmt"
	"pathfinder/internal/model"
	"sort"
	"strings"
)

var (
	ErrUnknownQuestion   = errors.New("unknown question")
	ErrInvalidChoice     = errors.New("answer is not one of the question's options")
	ErrEmptyAnswer       = errors.New("answer is empty")
	ErrIncompleteAnswers = errors.New("not every question has been answered")
)

// NormalizeAnswer validates a raw answer for question id on track and
// returns the value to store.
func NormalizeAnswer(track model.Track, id int, raw string) (string, error) {
	q, ok := Find(track, id)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}

	answer := strings.TrimSpace(raw)
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	if q.InputType != model.InputChoice {
		return answer, nil
	}
	for _, opt := range q.Options {
		if strings.EqualFold(opt.Value, answer) {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
}

// Missing lists scheduled question ids without an answer, ascending.
func Missing(track model.Track, answers model.AnswerMap) []int {
	var missing []int
	for _, q := range Questions(track) {
		if strings.TrimSpace(answers[q.ID]) == "" {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Transcript renders answers as `[context]: "answer"` lines in question id
// order. Ids outside the schedule are labelled "Question <id>".
func Transcript(track model.Track, answers model.AnswerMap) string {
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		label := fmt.Sprintf("Question %d", id)
		if q, ok := Find(track, id); ok {
			label = q.Context
		}
		lines = append(lines, fmt.Sprintf("[%s]: %q", label, answers[id]))
	}
	return strings.Join(lines, "\n")
}
