package evaluationapimodels

import (
	dbmodels "recruit-flow-backend/models/db"
)

// StructuredEvaluation is the schema-conformant scored output of the
// evaluation engine. Section scores and reasoning come from the generation
// backend and are validated for shape, not re-verified arithmetically.
type StructuredEvaluation struct {
	CandidateName  string   `json:"candidate_name"`
	EvaluationDate string   `json:"evaluation_date"`
	Position       string   `json:"position"`
	OverallScore   float64  `json:"overall_score"`
	Recommendation string   `json:"recommendation"`
	Sections       Sections `json:"sections"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	NextSteps      NextSteps `json:"next_steps"`
}

type Sections struct {
	TechnicalSkills   Section `json:"technical_skills"`
	ExperienceQuality Section `json:"experience_quality"`
	CulturalFit       Section `json:"cultural_fit"`
	GrowthPotential   Section `json:"growth_potential"`
}

type Section struct {
	Score    float64  `json:"score"`
	MaxScore float64  `json:"max_score"`
	Summary  string   `json:"summary"`
	Evidence []string `json:"evidence"`
}

type NextSteps struct {
	ProceedToInterview  bool     `json:"proceed_to_interview"`
	InterviewFocusAreas []string `json:"interview_focus_areas"`
	QuestionsToClarify  []string `json:"questions_to_clarify"`
}

type EvaluateRequest struct {
	SelectionStageID string `json:"selection_stage_id"`
}

type EvaluationView struct {
	ID             string   `json:"id"`
	CandidateID    string   `json:"candidate_id"`
	StageID        string   `json:"stage_id,omitempty"`
	Position       string   `json:"position"`
	OverallScore   float64  `json:"overall_score"`
	Recommendation string   `json:"recommendation"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	Comments       string   `json:"comments"`
	CreatedAt      string   `json:"created_at"`
	Report         string   `json:"report,omitempty"`
}

func Convert(rec dbmodels.Evaluation) EvaluationView {
	view := EvaluationView{
		ID:             rec.ID,
		CandidateID:    rec.CandidateID,
		Position:       rec.Position,
		OverallScore:   rec.OverallScore,
		Recommendation: string(rec.Recommendation),
		Strengths:      []string(rec.Strengths),
		Concerns:       []string(rec.Concerns),
		Comments:       rec.Comments,
		CreatedAt:      rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if rec.SelectionStageID != nil {
		view.StageID = *rec.SelectionStageID
	}
	return view
}
