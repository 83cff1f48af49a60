package service

import (
	"fmt"
	"pathfinder/internal/catalog"
	"pathfinder/internal/engine"
	"pathfinder/internal/model"
	"strings"
)

const (
	extractTemperature       = 0.2
	narrateTemperature       = 0.5
	narrateCustomTemperature = 0.2
)

func levelLabel(track model.Track) string {
	if track == model.TrackUndergraduate {
		return "Post-Graduation"
	}
	return "Post-Class 12"
}

func degreeLevel(track model.Track) string {
	if track == model.TrackUndergraduate {
		return "Master's/Postgrad degrees"
	}
	return "Undergraduate degrees"
}

func extractionSchema() *Schema {
	return &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"traits": {
				Type:        "ARRAY",
				Description: "Traits evidenced by the answers, each with a weight between 0 and 1.",
				Items: &Schema{
					Type: "OBJECT",
					Properties: map[string]*Schema{
						"name":   {Type: "STRING", Enum: catalog.Traits()},
						"weight": {Type: "NUMBER", Description: "0 to 1"},
					},
					Required: []string{"name", "weight"},
				},
			},
			"keywords": {
				Type:        "ARRAY",
				Description: "Concrete subjects, fields or activities named in the student's own words.",
				Items:       &Schema{Type: "STRING"},
			},
		},
		Required: []string{"traits", "keywords"},
	}
}

const extractionSystem = `You are a psychometric profiler for a career guidance service.
Read a student's quiz answers and map them onto a fixed list of traits.

Rules:
1. Only use trait names from the allowed enum. Never invent traits.
2. Weight each trait from 0 to 1 by how strongly the answers evidence it. Omit traits with no evidence.
3. Look for indirect signals, not just surface words.
4. Keywords are short search terms taken from the student's own wording (subjects, fields, hobbies, job titles).

Return valid JSON only.`

func extractionPrompt(transcript string, track model.Track) string {
	return fmt.Sprintf(`TASK: Build the trait profile for this student.

LEVEL: %s
ANSWERS:
%s`, levelLabel(track), transcript)
}

func narrativeSchema() *Schema {
	str := func(desc string) *Schema { return &Schema{Type: "STRING", Description: desc} }
	return &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"archetype": {
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"title":       str("A creative title for the user's professional persona"),
					"description": str("A paragraph describing who they are based on the answers."),
					"drivers": {
						Type: "OBJECT",
						Properties: map[string]*Schema{
							"academic":   str(""),
							"passion":    str(""),
							"cognitive":  str(""),
							"domain":     str(""),
							"motivation": str(""),
						},
						Required: []string{"academic", "passion", "cognitive", "domain", "motivation"},
					},
				},
				Required: []string{"title", "description", "drivers"},
			},
			"visionBoard": {
				Type:        "OBJECT",
				Description: "A visualization of the user's future career life.",
				Properties: map[string]*Schema{
					"futureSelf": str("A vivid paragraph describing a day in the life of this person 5 years from now."),
					"keyThemes":  {Type: "ARRAY", Items: &Schema{Type: "STRING"}, Description: "3-4 single words representing their future."},
					"quote":      str("An inspiring quote that fits their personality."),
				},
				Required: []string{"futureSelf", "keyThemes", "quote"},
			},
			"skillSignature": {
				Type:        "ARRAY",
				Description: "Numerical representation of skills for a radar chart. Return exactly 6 key dimensions.",
				Items: &Schema{
					Type: "OBJECT",
					Properties: map[string]*Schema{
						"subject":  str("Dimension name (e.g. Creativity, Logic, Empathy)"),
						"A":        {Type: "INTEGER", Description: "Score from 0 to 100"},
						"fullMark": {Type: "INTEGER", Description: "Always 100"},
					},
					Required: []string{"subject", "A", "fullMark"},
				},
			},
			"recommendations": {
				Type:        "ARRAY",
				Description: "Top 3 recommended courses. MUST use exact course names from the provided candidates.",
				Items: &Schema{
					Type: "OBJECT",
					Properties: map[string]*Schema{
						"degree":         str("The degree type (e.g. 'B.Des', 'B.Tech', 'MBA', 'B.Sc')."),
						"courseName":     str("Must match the exact name from the candidate list."),
						"matchReason":    str("Why this fits the archetype, referencing specific user answers."),
						"dataInsight":    str("Technical explanation of the skill match."),
						"relevanceScore": {Type: "INTEGER", Description: "0-100"},
					},
					Required: []string{"degree", "courseName", "matchReason", "dataInsight", "relevanceScore"},
				},
			},
			"alternativePathways": {
				Type:        "ARRAY",
				Description: "2-3 alternative career paths, using exact course names from the candidates.",
				Items: &Schema{
					Type: "OBJECT",
					Properties: map[string]*Schema{
						"focus":      str(""),
						"courseName": str(""),
						"insight":    str(""),
					},
					Required: []string{"focus", "courseName", "insight"},
				},
			},
			"communityStats": {
				Type:        "OBJECT",
				Description: "Simulated statistics for people with this specific archetype.",
				Properties: map[string]*Schema{
					"headline": str("A catchy header about this cohort."),
					"topCareers": {
						Type: "ARRAY",
						Items: &Schema{
							Type: "OBJECT",
							Properties: map[string]*Schema{
								"name":       str(""),
								"percentage": {Type: "INTEGER"},
							},
							Required: []string{"name", "percentage"},
						},
					},
					"commonInterests": {Type: "ARRAY", Items: &Schema{Type: "STRING"}},
				},
				Required: []string{"headline", "topCareers", "commonInterests"},
			},
		},
		Required: []string{"archetype", "visionBoard", "skillSignature", "recommendations", "alternativePathways", "communityStats"},
	}
}

const narrativeSystem = `You are Pathfinder AI, a career counselor and academic strategist.
A scoring engine has already ranked the catalog for this student. Your job is to choose and explain.

Rules:
1. Pick the 3 recommendations and 2-3 alternative pathways ONLY from the CANDIDATES list.
2. Copy each courseName exactly as written in the list. Never invent or rename a course.
3. Prefer higher-ranked candidates unless the answers clearly point elsewhere.
4. Explain every pick with reference to the student's own answers.

Return valid JSON only.`

func narrativePrompt(req NarrativeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TASK: Recommend the 3 best %s for this student.\n\n", degreeLevel(req.Track))
	fmt.Fprintf(&b, "=== 1. STUDENT PROFILE ===\nLEVEL: %s\nANSWERS:\n%s\n\n", levelLabel(req.Track), req.Transcript)

	if req.DegreePreference != "" || req.SubjectPreference != "" {
		b.WriteString("=== 2. STATED PREFERENCES (MANDATORY) ===\n")
		if req.DegreePreference != "" {
			fmt.Fprintf(&b, "- The student wants a %q degree. Exactly one recommendation MUST be from this degree family.\n", req.DegreePreference)
		}
		if req.SubjectPreference != "" {
			fmt.Fprintf(&b, "- The student's favourite subject is %q. Exactly one recommendation MUST cover it.\n", req.SubjectPreference)
		}
		b.WriteString("\n")
	}

	b.WriteString("=== CANDIDATES (ranked, best first) ===\n")
	b.WriteString(formatCandidates(req.Candidates))
	b.WriteString("\n\nSelect from the candidates and return JSON.")
	return b.String()
}

// formatCandidates lists name, category and score only; trait weights stay
// inside the engine.
func formatCandidates(candidates []engine.ScoredCandidate) string {
	lines := make([]string, len(candidates))
	for i, c := range candidates {
		lines[i] = fmt.Sprintf("%d. Name: %q | Category: %s | Score: %.1f", i+1, c.Program.Name, c.Program.Category, c.Score)
	}
	return strings.Join(lines, "\n")
}
