package engine

import (
	"pathfinder/internal/catalog"
	"sort"
	"strings"
)

// Score terms. Only their ordering matters: a degree match outranks any
// subject match, a subject match outranks any profile overlap, and profile
// overlap outranks keyword hits.
const (
	DegreeBoost     = 1_000_000.0
	SubjectBoost    = 100_000.0
	DotMultiplier   = 10.0
	SpikeMultiplier = 10.0
	KeywordBonus    = 2.0
	NoiseFloor      = 0.1

	minPreferenceLen = 3
	minKeywordLen    = 3

	// DefaultCandidateLimit is how many ranked programs the narrative step sees.
	DefaultCandidateLimit = 150
)

// Preferences are the optional stated steering inputs of a scoring run.
type Preferences struct {
	Degree  string
	Subject string
}

// ScoredCandidate is a program annotated with the score of one run.
type ScoredCandidate struct {
	Program catalog.Program
	Score   float64
}

// Scout scores every program and returns them sorted by score, highest
// first. Programs with equal scores keep their catalog order.
func Scout(profile Vector, keywords []string, programs []catalog.Program, prefs Preferences) []ScoredCandidate {
	kws := normalizeKeywords(keywords)
	degree := strings.ToLower(strings.TrimSpace(prefs.Degree))
	subject := strings.ToLower(strings.TrimSpace(prefs.Subject))

	scored := make([]ScoredCandidate, len(programs))
	for i, p := range programs {
		scored[i] = ScoredCandidate{Program: p, Score: scoreProgram(profile, kws, p, degree, subject)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func scoreProgram(profile Vector, keywords []string, p catalog.Program, degree, subject string) float64 {
	name := strings.ToLower(p.Name)
	category := strings.ToLower(p.Category)

	var score float64
	if len(degree) >= minPreferenceLen && matchesDegree(degree, name, category) {
		score += DegreeBoost
	}
	if len(subject) >= minPreferenceLen && matchesSubject(subject, name, category, p.Tags) {
		score += SubjectBoost
	}
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			score += KeywordBonus
		}
	}

	dot, peak := overlap(profile, p.Weights)
	score += dot*DotMultiplier + peak*SpikeMultiplier
	return score
}

// overlap returns the weighted dot product of profile and weights over
// traits above the noise floor, and the largest single product.
func overlap(profile Vector, weights map[string]float64) (dot, peak float64) {
	for _, trait := range catalog.Vocabulary {
		u := profile[trait]
		if u <= NoiseFloor {
			continue
		}
		w := weights[trait]
		if w <= 0 {
			continue
		}
		product := u * w
		dot += product
		if product > peak {
			peak = product
		}
	}
	return dot, peak
}

func matchesDegree(pref, name, category string) bool {
	if strings.Contains(name, pref) || strings.Contains(category, pref) {
		return true
	}
	for _, alias := range catalog.DegreeAliases {
		if !strings.Contains(pref, alias.Key) {
			continue
		}
		for _, variant := range alias.Variants {
			if degreeVariantMatches(variant, name, category) {
				return true
			}
		}
	}
	return false
}

// degreeVariantMatches compares a short degree code against a program
// without letting "b.e" match "b.ed" or "ba" match "bba".
func degreeVariantMatches(variant, name, category string) bool {
	if category == variant || name == variant {
		return true
	}
	for _, field := range strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '-' || r == '/' || r == '(' || r == ')' || r == ','
	}) {
		if strings.TrimSuffix(field, ".") == strings.TrimSuffix(variant, ".") {
			return true
		}
	}
	return false
}

func matchesSubject(subject, name, category string, tags []string) bool {
	if strings.Contains(name, subject) || strings.Contains(category, subject) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), subject) {
			return true
		}
	}
	return false
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len(kw) >= minKeywordLen {
			out = append(out, kw)
		}
	}
	return out
}

// TopCandidates returns at most n leading candidates.
func TopCandidates(candidates []ScoredCandidate, n int) []ScoredCandidate {
	if n < 0 || len(candidates) <= n {
		return candidates
	}
	return candidates[:n]
}
