package engine

import "pathfinder/internal/model"

const (
	RecommendationCount = 3
	MinAlternatives     = 2
	MaxAlternatives     = 3

	// alternativeOffset is the pool rank an alternative at index 0 falls
	// back to: alternatives start after the recommendation ranks.
	alternativeOffset = 3
)

// RelevanceBands are the relevance scores assigned by recommendation rank.
var RelevanceBands = [RecommendationCount]int{95, 88, 82}

// NameSet answers whether a course name exists in a catalog.
type NameSet interface {
	IsValid(name string) bool
}

// Repair rewrites result so every recommended or alternative course name is
// a member of valid, drawing replacements from pool in rank order. It also
// fixes the recommendation count at 3, keeps 2-3 alternatives and rewrites
// relevance scores into descending bands. With an empty pool it does
// nothing.
func Repair(result *model.AnalysisResult, pool []ScoredCandidate, valid NameSet) {
	if result == nil || len(pool) == 0 {
		return
	}

	for i := range result.Recommendations {
		if !valid.IsValid(result.Recommendations[i].CourseName) {
			c := candidateAt(pool, i, 0)
			result.Recommendations[i].CourseName = c.Program.Name
			result.Recommendations[i].Degree = c.Program.Category
		}
	}
	for i := range result.AlternativePathways {
		if !valid.IsValid(result.AlternativePathways[i].CourseName) {
			c := candidateAt(pool, i+alternativeOffset, len(pool)-1)
			result.AlternativePathways[i].CourseName = c.Program.Name
		}
	}

	result.Recommendations = fitRecommendations(result.Recommendations, pool)
	result.AlternativePathways = fitAlternatives(result.AlternativePathways, result.Recommendations, pool)

	for i := range result.Recommendations {
		result.Recommendations[i].RelevanceScore = RelevanceBands[i]
	}
}

func candidateAt(pool []ScoredCandidate, rank, fallback int) ScoredCandidate {
	if rank >= 0 && rank < len(pool) {
		return pool[rank]
	}
	return pool[fallback]
}

func fitRecommendations(recs []model.Recommendation, pool []ScoredCandidate) []model.Recommendation {
	if len(recs) > RecommendationCount {
		recs = recs[:RecommendationCount]
	}
	used := make(map[string]struct{}, RecommendationCount)
	for _, r := range recs {
		used[r.CourseName] = struct{}{}
	}
	for len(recs) < RecommendationCount {
		c := nextUnused(pool, used, 0)
		used[c.Program.Name] = struct{}{}
		recs = append(recs, model.Recommendation{
			Degree:      c.Program.Category,
			CourseName:  c.Program.Name,
			MatchReason: "Ranked among your strongest profile matches.",
			DataInsight: c.Program.Description,
		})
	}
	return recs
}

func fitAlternatives(alts []model.Alternative, recs []model.Recommendation, pool []ScoredCandidate) []model.Alternative {
	if len(alts) > MaxAlternatives {
		alts = alts[:MaxAlternatives]
	}
	used := make(map[string]struct{}, len(recs)+len(alts))
	for _, r := range recs {
		used[r.CourseName] = struct{}{}
	}
	for _, a := range alts {
		used[a.CourseName] = struct{}{}
	}
	for len(alts) < MinAlternatives {
		c := nextUnused(pool, used, alternativeOffset)
		used[c.Program.Name] = struct{}{}
		alts = append(alts, model.Alternative{
			Focus:      c.Program.Category,
			CourseName: c.Program.Name,
			Insight:    c.Program.Description,
		})
	}
	return alts
}

// nextUnused returns the best-ranked candidate from start onwards whose name
// is not in used, wrapping to the top of the pool; if every name is taken it
// returns the candidate at start (or the last one).
func nextUnused(pool []ScoredCandidate, used map[string]struct{}, start int) ScoredCandidate {
	for i := 0; i < len(pool); i++ {
		c := pool[(start+i)%len(pool)]
		if _, ok := used[c.Program.Name]; !ok {
			return c
		}
	}
	return candidateAt(pool, start, len(pool)-1)
}
