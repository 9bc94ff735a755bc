package dbmodels

import (
	"github.com/lib/pq"
	"recruit-flow-backend/models"
)

// Evaluation is immutable once created. Multiple evaluations per candidate
// are allowed, one per stage attempt.
type Evaluation struct {
	BaseModel
	CandidateID      string          `gorm:"type:varchar(36);index"`
	Candidate        *Candidate      `gorm:"foreignKey:CandidateID"`
	SelectionStageID *string         `gorm:"type:varchar(36)"`
	SelectionStage   *SelectionStage `gorm:"foreignKey:SelectionStageID"`

	Position       string  `gorm:"type:varchar(255)"`
	OverallScore   float64
	Recommendation models.Recommendation `gorm:"type:varchar(50)"`
	Scores         string                `gorm:"type:jsonb;default:'{}'"` // per-category score sections
	Comments       string
	Strengths      pq.StringArray `gorm:"type:text[]"`
	Concerns       pq.StringArray `gorm:"type:text[]"`
	// Full structured backend response, retained for audit.
	RawOutput string `gorm:"type:jsonb"`
}
