package catalog

// Vocabulary is the fixed, ordered trait list. Column 3+ of a weights CSV is
// aligned to it by index, and every profile vector is keyed by these names.
var Vocabulary = [...]string{
	"Critical Thinking", "Analytical Reasoning", "Problem Solving", "Logical Reasoning",
	"Research Skills", "Data Interpretation", "Quantitative Analysis", "Decision Making",
	"Creativity & Innovation", "Strategic Thinking", "Written Communication", "Verbal Communication",
	"Presentation Skills", "Public Speaking", "Negotiation", "Teamwork",
	"Cross-Cultural Communication", "Interpersonal Skills", "Conflict Resolution", "Emotional Intelligence",
	"Self-Learning", "Adaptability", "Curiosity", "Growth Mindset", "Time Management",
	"Attention to Detail", "Organization Skills", "Resilience", "Self-Motivation",
	"Business Management", "Economics", "Psychology", "Sociology", "Political Science",
	"Environmental Studies", "Biology", "Chemistry", "Physics", "Mathematics",
	"Computer Literacy", "Statistics", "Finance & Accounting", "Marketing & Branding",
	"Human Resource Management", "Digital Literacy", "Sustainability Awareness",
	"Global Awareness", "Leadership", "Project Management", "Ethical Reasoning",
	"Social Responsibility", "Cultural Awareness",
}

var traitIndex = func() map[string]int {
	m := make(map[string]int, len(Vocabulary))
	for i, t := range Vocabulary {
		m[t] = i
	}
	return m
}()

// IsTrait reports whether name is part of the vocabulary.
func IsTrait(name string) bool {
	_, ok := traitIndex[name]
	return ok
}

// TraitIndex returns the vocabulary position of name, or -1.
func TraitIndex(name string) int {
	if i, ok := traitIndex[name]; ok {
		return i
	}
	return -1
}

// Traits returns a copy of the vocabulary as a slice.
func Traits() []string {
	out := make([]string, len(Vocabulary))
	copy(out, Vocabulary[:])
	return out
}
