package engine

import "pathfinder/internal/model"

// Vector maps trait names to non-negative weights. Absent traits weigh 0.
type Vector map[string]float64

// calibrationIncrement is added once per listed trait per matching answer.
const calibrationIncrement = 1.0

// choiceTraits maps choice answer values to the traits they evidence. Keys
// are answer values, not question ids, so a value shared by two questions
// counts wherever it appears.
var choiceTraits = map[string][]string{
	// Ideal work day
	"Data Puzzle":        {"Problem Solving", "Analytical Reasoning", "Logical Reasoning", "Quantitative Analysis"},
	"Creative Design":    {"Creativity & Innovation", "Presentation Skills", "Attention to Detail", "Digital Literacy"},
	"Team Vision":        {"Leadership", "Strategic Thinking", "Verbal Communication", "Negotiation"},
	"Helping One-on-One": {"Emotional Intelligence", "Interpersonal Skills", "Social Responsibility", "Psychology"},

	// Comfort zone
	"Numbers & Data":  {"Mathematics", "Statistics", "Data Interpretation", "Quantitative Analysis"},
	"People & Teams":  {"Teamwork", "Interpersonal Skills", "Conflict Resolution", "Human Resource Management"},
	"Words & Ideas":   {"Written Communication", "Critical Thinking", "Curiosity", "Research Skills"},
	"Tools & Objects": {"Physics", "Problem Solving", "Attention to Detail", "Computer Literacy"},

	// Career motivation
	"Innovation": {"Creativity & Innovation", "Curiosity", "Growth Mindset"},
	"Impact":     {"Social Responsibility", "Sustainability Awareness", "Ethical Reasoning", "Global Awareness"},
	"Expertise":  {"Research Skills", "Self-Learning", "Critical Thinking"},
	"Leadership": {"Leadership", "Decision Making", "Business Management", "Project Management"},

	// Value spellings of the second question set
	"Solving Data Puzzles":           {"Problem Solving", "Analytical Reasoning", "Logical Reasoning", "Quantitative Analysis"},
	"Creative Design & Presentation": {"Creativity & Innovation", "Presentation Skills", "Attention to Detail", "Digital Literacy"},
	"Leadership & Strategy":          {"Leadership", "Strategic Thinking", "Verbal Communication", "Negotiation"},
	"Helping Individuals":            {"Emotional Intelligence", "Interpersonal Skills", "Social Responsibility", "Psychology"},
	"Tools & Physical Objects":       {"Physics", "Problem Solving", "Attention to Detail", "Computer Literacy"},
	"Innovation & Creation":          {"Creativity & Innovation", "Curiosity", "Growth Mindset"},
	"Social Impact":                  {"Social Responsibility", "Sustainability Awareness", "Ethical Reasoning", "Global Awareness"},
	"Deep Expertise":                 {"Research Skills", "Self-Learning", "Critical Thinking"},
	"Leadership & Influence":         {"Leadership", "Decision Making", "Business Management", "Project Management"},
	"Corporate Executive":            {"Business Management", "Leadership", "Strategic Thinking", "Decision Making"},
	"Entrepreneurship":               {"Creativity & Innovation", "Self-Motivation", "Business Management", "Resilience"},
	"Research & Academia":            {"Research Skills", "Curiosity", "Critical Thinking", "Written Communication"},
}

// Calibrate converts recognized choice values into trait weights. Free text
// and unknown values contribute nothing. The result depends only on answers.
func Calibrate(answers model.AnswerMap) Vector {
	out := make(Vector)
	for _, answer := range answers {
		for _, trait := range choiceTraits[answer] {
			out[trait] += calibrationIncrement
		}
	}
	return out
}

// CalibratedValues lists every answer value the calibrator recognizes.
func CalibratedValues() []string {
	out := make([]string, 0, len(choiceTraits))
	for v := range choiceTraits {
		out = append(out, v)
	}
	return out
}
