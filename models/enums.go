package models

type StageType string

const (
	StageTypeDocumentScreening StageType = "document_screening"
	StageTypeFirstInterview    StageType = "first_interview"
	StageTypeSecondInterview   StageType = "second_interview"
	StageTypeFinalInterview    StageType = "final_interview"
	StageTypeOffer             StageType = "offer"
	StageTypeCustom            StageType = "custom"
)

type CandidateStatus string

const (
	CandidateStatusInProgress CandidateStatus = "in_progress"
	CandidateStatusPassed     CandidateStatus = "passed"
	CandidateStatusFailed     CandidateStatus = "failed"
	CandidateStatusPending    CandidateStatus = "pending"
	CandidateStatusWithdrawn  CandidateStatus = "withdrawn"
)

func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateStatusInProgress, CandidateStatusPassed, CandidateStatusFailed,
		CandidateStatusPending, CandidateStatusWithdrawn:
		return true
	}
	return false
}

// ProgressStatus is the per-stage status of a candidate.
// Free-form on the wire, these are the conventional values.
type ProgressStatus string

const (
	ProgressStatusNotStarted ProgressStatus = "not_started"
	ProgressStatusInProgress ProgressStatus = "in_progress"
	ProgressStatusCompleted  ProgressStatus = "completed"
	ProgressStatusSkipped    ProgressStatus = "skipped"
)

type Recommendation string

const (
	RecommendationStrong      Recommendation = "strongly_recommend"
	RecommendationRecommend   Recommendation = "recommend"
	RecommendationConditional Recommendation = "conditional_recommend"
	RecommendationReject      Recommendation = "reject"
)

type QuestionCategory string

const (
	QuestionCategoryTechnicalSkill QuestionCategory = "technical_skill"
	QuestionCategoryExperience     QuestionCategory = "experience"
	QuestionCategoryCulturalFit    QuestionCategory = "cultural_fit"
	QuestionCategoryGrowth         QuestionCategory = "growth_potential"
	QuestionCategoryMotivation     QuestionCategory = "motivation"
	QuestionCategoryValues         QuestionCategory = "values"
	QuestionCategoryCommunication  QuestionCategory = "communication"
	QuestionCategoryProblemSolving QuestionCategory = "problem_solving"
)
