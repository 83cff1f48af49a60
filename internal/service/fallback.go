package service

import (
	"fmt"
	"pathfinder/internal/model"
)

const (
	simulationTitle  = "⚠️ SIMULATION MODE (API FAILED) ⚠️"
	errorTitleRunes  = 50
	unknownFailure   = "Unknown Error"
	fallbackFullMark = 100
)

// FallbackResult is the clearly labelled placeholder report served when a
// model call fails. Its course names are placeholders; callers repair them
// against a catalog before returning the result.
func FallbackResult(track model.Track, failure string) *model.AnalysisResult {
	title := simulationTitle
	if failure != "" {
		title = fmt.Sprintf("⚠️ API ERROR: %s...", truncateRunes(failure, errorTitleRunes))
	}
	detail := failure
	if detail == "" {
		detail = unknownFailure
	}

	result := &model.AnalysisResult{
		Archetype: model.Archetype{
			Title: title,
			Description: fmt.Sprintf("[DIAGNOSTIC]: Live analysis failed and could not reach the language model.\n"+
				"Error Details: %s.\n\nThe report below is simulation data, not your personal result.", detail),
			Drivers: model.Drivers{
				Academic:   "Computer Science & Design",
				Passion:    "Building & Creating",
				Cognitive:  "Structural Logic",
				Domain:     "Technology",
				Motivation: "Innovation",
			},
		},
		VisionBoard: model.VisionBoard{
			FutureSelf: "Five years from now, you are leading a product team or running your own venture. " +
				"Your workspace is a blend of code and canvas, with whiteboards full of diagrams and screens running simulations. " +
				"You are the bridge between raw engineering and human experience.",
			KeyThemes: []string{"Builder", "Innovator", "Tech-Artist"},
			Quote:     "The best way to predict the future is to invent it. – Alan Kay",
		},
		SkillSignature: []model.SkillScore{
			{Subject: "Logic & Algo", A: 85, FullMark: fallbackFullMark},
			{Subject: "Creativity", A: 90, FullMark: fallbackFullMark},
			{Subject: "Empathy", A: 75, FullMark: fallbackFullMark},
			{Subject: "Tech Fluency", A: 80, FullMark: fallbackFullMark},
			{Subject: "Leadership", A: 60, FullMark: fallbackFullMark},
			{Subject: "Entrepreneurship", A: 70, FullMark: fallbackFullMark},
		},
		CommunityStats: model.CommunityStats{
			Headline: "People like you often found startups or lead product teams.",
			TopCareers: []model.CareerStat{
				{Name: "Product Manager", Percentage: 40},
				{Name: "Software Architect", Percentage: 35},
				{Name: "UX Researcher", Percentage: 25},
			},
			CommonInterests: []string{"Generative Art", "Startup Culture", "Sci-Fi Literature", "Hackathons"},
		},
	}

	if track == model.TrackUndergraduate {
		result.Recommendations = []model.Recommendation{
			{Degree: "M.Tech", CourseName: "M.Tech in Computer Science", MatchReason: "Matches a strong foundation in code and a drive to build complex systems.", DataInsight: "Keyword overlap: Technology, Coding, Architecture", RelevanceScore: 95},
			{Degree: "MBA", CourseName: "MBA (General Management)", MatchReason: "Helps scale ideas and lead teams effectively.", DataInsight: "Keyword overlap: Leadership, Strategy, Business", RelevanceScore: 88},
			{Degree: "M.Des", CourseName: "Masters in Design (M.Des)", MatchReason: "Keeps technical solutions user-centric.", DataInsight: "Keyword overlap: Design, Creativity, UX", RelevanceScore: 85},
		}
		result.AlternativePathways = []model.Alternative{
			{Focus: "Creative Tech", CourseName: "M.Des in Animation & VFX", Insight: "If you want to lean purely into the creative side."},
			{Focus: "Business of Tech", CourseName: "MBA (Finance & Fintech)", Insight: "If you decide to focus on the market side of innovation."},
		}
		return result
	}

	result.Recommendations = []model.Recommendation{
		{Degree: "B.Tech", CourseName: "B.E. / B.Tech Computer Science", MatchReason: "The standard route for builders.", DataInsight: "Keyword overlap: Technology, Logic, Code", RelevanceScore: 95},
		{Degree: "B.Des", CourseName: "B.Des in User Interface/User Experience (UI/UX)", MatchReason: "Blends tech skills with a creative eye for human interaction.", DataInsight: "Keyword overlap: Design, Creativity, Technology", RelevanceScore: 90},
		{Degree: "B.Sc", CourseName: "B.Sc in Data Science / AI", MatchReason: "For the analytical side, enabling smart systems.", DataInsight: "Keyword overlap: Analysis, Logic, AI", RelevanceScore: 85},
	}
	result.AlternativePathways = []model.Alternative{
		{Focus: "Creative Tech", CourseName: "B.Des in Game Design", Insight: "If you want to lean purely into the creative side."},
		{Focus: "Business of Tech", CourseName: "BBA (Marketing / Finance)", Insight: "If you decide to focus on the market side of innovation."},
	}
	return result
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
