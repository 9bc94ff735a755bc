package dbmodels

import (
	"recruit-flow-backend/models"
)

// CandidateStageProgress is the per-candidate, per-stage status record.
// At most one row exists per (candidate, stage) pair; created lazily on the
// first status write or on advancement.
type CandidateStageProgress struct {
	BaseModel
	CandidateID      string          `gorm:"type:varchar(36);uniqueIndex:idx_candidate_stage,priority:1"`
	Candidate        *Candidate      `gorm:"foreignKey:CandidateID"`
	SelectionStageID string          `gorm:"type:varchar(36);uniqueIndex:idx_candidate_stage,priority:2"`
	SelectionStage   *SelectionStage `gorm:"foreignKey:SelectionStageID"`

	Status models.ProgressStatus `gorm:"type:varchar(50);default:'not_started'"`
	Notes  string
}
