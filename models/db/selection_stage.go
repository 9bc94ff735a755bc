package dbmodels

import (
	"github.com/lib/pq"
	"recruit-flow-backend/models"
)

type SelectionStage struct {
	BaseModel
	JobPostingID string      `gorm:"type:varchar(36);index;uniqueIndex:idx_posting_stage_order,priority:1"`
	JobPosting   *JobPosting `gorm:"foreignKey:JobPostingID"`
	// StageOrder values of a posting form a contiguous ascending sequence
	// starting at 1. The engine never renumbers gaps.
	StageOrder        int              `gorm:"uniqueIndex:idx_posting_stage_order,priority:2"`
	Name              string           `gorm:"type:varchar(255)"`
	StageType         models.StageType `gorm:"type:varchar(50);default:'custom'"`
	Description       string
	EvaluationFocus   pq.StringArray `gorm:"type:text[]"`
	RequiredDocuments pq.StringArray `gorm:"type:text[]"`
}

// DefaultSelectionStages is the stage template applied to a new posting.
var DefaultSelectionStages = []SelectionStage{
	{StageOrder: 1, Name: "Document screening", StageType: models.StageTypeDocumentScreening,
		EvaluationFocus:   pq.StringArray{"technical_skills", "experience_quality"},
		RequiredDocuments: pq.StringArray{"resume"}},
	{StageOrder: 2, Name: "First interview", StageType: models.StageTypeFirstInterview,
		EvaluationFocus: pq.StringArray{"technical_skills", "cultural_fit"}},
	{StageOrder: 3, Name: "Second interview", StageType: models.StageTypeSecondInterview,
		EvaluationFocus: pq.StringArray{"cultural_fit", "growth_potential"}},
	{StageOrder: 4, Name: "Final interview", StageType: models.StageTypeFinalInterview,
		EvaluationFocus: pq.StringArray{"growth_potential", "cultural_fit"}},
	{StageOrder: 5, Name: "Offer", StageType: models.StageTypeOffer},
}
