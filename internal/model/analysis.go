package model

// AnalysisResult is the final report shown to a respondent. Course names in
// Recommendations and AlternativePathways always come from the catalog the
// analysis ran against.
type AnalysisResult struct {
	Archetype           Archetype        `json:"archetype" bson:"archetype" validate:"required"`
	VisionBoard         VisionBoard      `json:"visionBoard" bson:"visionBoard" validate:"required"`
	SkillSignature      []SkillScore     `json:"skillSignature" bson:"skillSignature" validate:"len=6,dive"`
	Recommendations     []Recommendation `json:"recommendations" bson:"recommendations" validate:"min=1,dive"`
	AlternativePathways []Alternative    `json:"alternativePathways" bson:"alternativePathways" validate:"min=1,dive"`
	CommunityStats      CommunityStats   `json:"communityStats" bson:"communityStats" validate:"required"`
}

type Archetype struct {
	Title       string  `json:"title" bson:"title" validate:"required"`
	Description string  `json:"description" bson:"description" validate:"required"`
	Drivers     Drivers `json:"drivers" bson:"drivers"`
}

// Drivers explains the five dimensions the archetype was derived from
type Drivers struct {
	Academic   string `json:"academic" bson:"academic"`
	Passion    string `json:"passion" bson:"passion"`
	Cognitive  string `json:"cognitive" bson:"cognitive"`
	Domain     string `json:"domain" bson:"domain"`
	Motivation string `json:"motivation" bson:"motivation"`
}

type VisionBoard struct {
	FutureSelf string   `json:"futureSelf" bson:"futureSelf"`
	KeyThemes  []string `json:"keyThemes" bson:"keyThemes"`
	Quote      string   `json:"quote" bson:"quote"`
}

// SkillScore is one radar-chart axis
type SkillScore struct {
	Subject  string `json:"subject" bson:"subject" validate:"required"`
	A        int    `json:"A" bson:"A" validate:"gte=0,lte=100"`
	FullMark int    `json:"fullMark" bson:"fullMark"`
}

type Recommendation struct {
	Degree         string `json:"degree" bson:"degree"`
	CourseName     string `json:"courseName" bson:"courseName" validate:"required"`
	MatchReason    string `json:"matchReason" bson:"matchReason"`
	DataInsight    string `json:"dataInsight" bson:"dataInsight"`
	RelevanceScore int    `json:"relevanceScore" bson:"relevanceScore"`
}

type Alternative struct {
	Focus      string `json:"focus" bson:"focus"`
	CourseName string `json:"courseName" bson:"courseName" validate:"required"`
	Insight    string `json:"insight" bson:"insight"`
}

type CommunityStats struct {
	Headline        string       `json:"headline" bson:"headline"`
	TopCareers      []CareerStat `json:"topCareers" bson:"topCareers"`
	CommonInterests []string     `json:"commonInterests" bson:"commonInterests"`
}

type CareerStat struct {
	Name       string `json:"name" bson:"name"`
	Percentage int    `json:"percentage" bson:"percentage"`
}

// TraitWeight is one entry of the extractor's sparse trait mapping
type TraitWeight struct {
	Name   string  `json:"name" validate:"required,trait"`
	Weight float64 `json:"weight" validate:"gte=0,lte=1"`
}

// SemanticProfile is the structured output of the semantic extraction call
type SemanticProfile struct {
	Traits   []TraitWeight `json:"traits" validate:"dive"`
	Keywords []string      `json:"keywords"`
}

// Vector flattens the trait list; a repeated trait keeps its highest weight.
func (p *SemanticProfile) Vector() map[string]float64 {
	out := make(map[string]float64, len(p.Traits))
	for _, t := range p.Traits {
		if t.Weight > out[t.Name] {
			out[t.Name] = t.Weight
		}
	}
	return out
}

// AnalysisStage names a progress event of the analysis pipeline
type AnalysisStage string

const (
	StageStarted    AnalysisStage = "analysis_started"
	StageCalibrated AnalysisStage = "profile_calibrated"
	StageExtracted  AnalysisStage = "profile_extracted"
	StageScouted    AnalysisStage = "candidates_scouted"
	StageNarrated   AnalysisStage = "narrative_ready"
	StageCompleted  AnalysisStage = "analysis_completed"
	StageFallback   AnalysisStage = "analysis_fallback"
	StageStuck      AnalysisStage = "analysis_stuck"
)

// ProgressEvent is pushed to a session's subscribers while analysis runs
type ProgressEvent struct {
	SessionID string        `json:"sessionId"`
	Stage     AnalysisStage `json:"stage"`
	Detail    string        `json:"detail,omitempty"`
}

// AnalysisRequest is the input of one analysis run
type AnalysisRequest struct {
	SessionID         string
	Track             Track
	Answers           AnswerMap
	DegreePreference  string
	SubjectPreference string
	CatalogID         string // empty means the default catalog
}

// AnalysisOutcome wraps a result with how it was produced
type AnalysisOutcome struct {
	Result      *AnalysisResult `json:"result"`
	Fallback    bool            `json:"fallback"`
	FailureNote string          `json:"failureNote,omitempty"`
	Cached      bool            `json:"cached"`
}
