package dbmodels

import (
	"github.com/lib/pq"
	"recruit-flow-backend/models"
)

type Candidate struct {
	BaseModel
	JobPostingID string      `gorm:"type:varchar(36);index"`
	JobPosting   *JobPosting `gorm:"foreignKey:JobPostingID"`

	Name  string `gorm:"type:varchar(255);index"`
	Email string `gorm:"type:varchar(255);index"`
	Phone string `gorm:"type:varchar(50)"`
	// Format C<yyyy><mm><4-digit-seq>, or an import-time alternate format.
	// The unique index is the serialization point for concurrent allocation.
	CandidateNumber string `gorm:"type:varchar(50);uniqueIndex"`

	ResumeObjectKey string `gorm:"type:varchar(500)"` // object storage key of the uploaded resume
	ResumeText      string // extracted text, cached after the first evaluation

	// CurrentStage, when set, must belong to the same posting as the candidate.
	// Repointed only by the stage workflow.
	CurrentStageID *string         `gorm:"type:varchar(36)"`
	CurrentStage   *SelectionStage `gorm:"foreignKey:CurrentStageID"`
	OverallStatus  models.CandidateStatus `gorm:"type:varchar(50);default:'in_progress'"`

	Tags  pq.StringArray `gorm:"type:text[]"`
	Notes string

	StageProgress []CandidateStageProgress `gorm:"foreignKey:CandidateID"`
	Evaluations   []Evaluation             `gorm:"foreignKey:CandidateID"`
}

type CandidateFilter struct {
	JobPostingID string `json:"job_posting_id"`
	Status       string `json:"status"`
	Search       string `json:"search"`
}
