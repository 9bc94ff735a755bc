package dbmodels

import (
	"recruit-flow-backend/models"
)

// GeneratedQuestion rows are created in batches by the question engine and
// deletable individually by staff.
type GeneratedQuestion struct {
	BaseModel
	CandidateID      string          `gorm:"type:varchar(36);index"`
	Candidate        *Candidate      `gorm:"foreignKey:CandidateID"`
	SelectionStageID *string         `gorm:"type:varchar(36);index"`
	SelectionStage   *SelectionStage `gorm:"foreignKey:SelectionStageID"`

	QuestionText string
	Purpose      string
	Category     models.QuestionCategory `gorm:"type:varchar(50)"`
	GeneratedBy  string                  `gorm:"type:varchar(50);default:'ai'"` // ai or fallback
	IsActive     bool                    `gorm:"default:true"`
}
