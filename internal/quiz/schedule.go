package quiz

import "pathfinder/internal/model"

var preUndergraduate = []model.Question{
	{
		ID:          1,
		Text:        "Of all your classes, which one feels the most like 'you'?",
		Subtext:     "(e.g., Math, Biology, English, History, Art, Code, etc.)",
		Placeholder: "The subject I connect with most is...",
		InputType:   model.InputText,
		Context:     "Favorite Class (Academic Identity)",
	},
	{
		ID:          2,
		Text:        "It's Saturday, no homework. What's the one thing you're doing that makes you lose track of time?",
		Subtext:     "(e.g., Gaming, Coding, Drawing, Reading/Writing)",
		Placeholder: "I usually find myself...",
		InputType:   model.InputText,
		Context:     "Saturday Activity (Flow State / Keyword Source)",
	},
	{
		ID:        3,
		Text:      "Which of these sounds like a better day at work?",
		InputType: model.InputChoice,
		Context:   "Ideal Work Day (Task Preference)",
		Options: []model.Option{
			{Label: "Solving a complex data puzzle.", Value: "Data Puzzle"},
			{Label: "Designing a creative presentation or product.", Value: "Creative Design"},
			{Label: "Persuading a team to follow your vision.", Value: "Team Vision"},
			{Label: "Helping a person one-on-one.", Value: "Helping One-on-One"},
		},
	},
	{
		ID:        4,
		Text:      "You're most comfortable working with...",
		InputType: model.InputChoice,
		Context:   "Comfort Zone (Modality)",
		Options: []model.Option{
			{Label: "Numbers and data.", Value: "Numbers & Data"},
			{Label: "People and teams.", Value: "People & Teams"},
			{Label: "Words and ideas.", Value: "Words & Ideas"},
			{Label: "Hands-on tools and objects.", Value: "Tools & Objects"},
		},
	},
	{
		ID:        5,
		Text:      "Ultimately, what's most important in your future career?",
		InputType: model.InputChoice,
		Context:   "Career Motivation (Core Values)",
		Options: []model.Option{
			{Label: "Building/creating something new and innovative.", Value: "Innovation"},
			{Label: "Helping people and making a positive impact.", Value: "Impact"},
			{Label: "Gaining deep knowledge and expertise.", Value: "Expertise"},
			{Label: "Achieving a position of leadership and influence.", Value: "Leadership"},
		},
	},
}

var undergraduate = []model.Question{
	{
		ID:          1,
		Text:        "Why are you looking for a change right now?",
		Subtext:     "Be honest - is it for money, passion, or pivot?",
		Placeholder: "I feel stuck because...",
		InputType:   model.InputText,
		Context:     "Reason for Change (Drive)",
	},
	{
		ID:          2,
		Text:        "Which hard skills do you want to master next?",
		Subtext:     "What specific technical or soft skills are you aiming for?",
		Placeholder: "e.g., AI/ML, Strategic Finance, Public Speaking, UI Design...",
		InputType:   model.InputText,
		Context:     "Desired Hard Skills (CRITICAL - Extract keywords here)",
	},
	{
		ID:        3,
		Text:      "Looking 3-5 years ahead, what specific job title or role do you see yourself in?",
		InputType: model.InputText,
		Context:   "Ideal Career Track",
	},
	{
		ID:        4,
		Text:      "Describe your ideal work environment (e.g. fast-paced startup, structured corporate, remote research, etc).",
		InputType: model.InputText,
		Context:   "Work-Life Preference",
	},
	{
		ID:        5,
		Text:      "If you had to write a thesis or lead a capstone project today, what specific topic would it cover?",
		InputType: model.InputText,
		Context:   "Specific Thesis/Interest Topic (Latent Interest)",
	},
}

// Questions returns the fixed schedule of a track.
func Questions(track model.Track) []model.Question {
	if track == model.TrackUndergraduate {
		return undergraduate
	}
	return preUndergraduate
}

// Find looks up a question of a track by id.
func Find(track model.Track, id int) (model.Question, bool) {
	for _, q := range Questions(track) {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}
