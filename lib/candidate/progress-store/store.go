package progressstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	GetByPair(candidateID, stageID string) (*dbmodels.CandidateStageProgress, error)
	ListByCandidate(candidateID string) (list []dbmodels.CandidateStageProgress, err error)
	// Upsert writes the status and optional notes for the (candidate, stage)
	// pair, creating the row lazily on the first write. Idempotent.
	Upsert(candidateID, stageID string, status models.ProgressStatus, notes *string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByPair(candidateID, stageID string) (*dbmodels.CandidateStageProgress, error) {
	rec := dbmodels.CandidateStageProgress{}
	err := i.db.
		Model(&dbmodels.CandidateStageProgress{}).
		Where("candidate_id = ?", candidateID).
		Where("selection_stage_id = ?", stageID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.CandidateStageProgress, err error) {
	list = []dbmodels.CandidateStageProgress{}
	err = i.db.
		Preload("SelectionStage").
		Where("candidate_id = ?", candidateID).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Upsert(candidateID, stageID string, status models.ProgressStatus, notes *string) error {
	rec, err := i.GetByPair(candidateID, stageID)
	if err != nil {
		return err
	}
	if rec == nil {
		newRec := dbmodels.CandidateStageProgress{
			CandidateID:      candidateID,
			SelectionStageID: stageID,
			Status:           status,
		}
		if notes != nil {
			newRec.Notes = *notes
		}
		return i.db.Create(&newRec).Error
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	if notes != nil {
		updMap["notes"] = *notes
	}
	return i.db.
		Model(&dbmodels.CandidateStageProgress{}).
		Where("id = ?", rec.ID).
		Updates(updMap).
		Error
}
