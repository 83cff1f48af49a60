package model

import "strings"

// Track identifies which question schedule and catalog partition apply.
type Track string

const (
	TrackPreUndergraduate Track = "12" // finishing class 12, recommend UG programs
	TrackUndergraduate    Track = "UG" // graduates, recommend PG programs
)

// ParseTrack accepts the track identifiers used by clients.
func ParseTrack(s string) (Track, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "12", "PRE-UG", "PREUG":
		return TrackPreUndergraduate, true
	case "UG", "PG":
		return TrackUndergraduate, true
	}
	return "", false
}

// AnswerMap holds one raw answer per question id. Recording an answer for an
// id that already has one replaces it.
type AnswerMap map[int]string

// Clone returns an independent copy.
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
