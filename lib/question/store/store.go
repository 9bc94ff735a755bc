package questionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	CreateBatch(recs []dbmodels.GeneratedQuestion) error
	ListByCandidate(candidateID string, stageID *string) (list []dbmodels.GeneratedQuestion, err error)
	Delete(candidateID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateBatch(recs []dbmodels.GeneratedQuestion) error {
	if len(recs) == 0 {
		return nil
	}
	return i.db.Create(&recs).Error
}

func (i impl) ListByCandidate(candidateID string, stageID *string) (list []dbmodels.GeneratedQuestion, err error) {
	list = []dbmodels.GeneratedQuestion{}
	tx := i.db.
		Where("candidate_id = ?", candidateID).
		Where("is_active = ?", true)
	if stageID != nil {
		tx = tx.Where("selection_stage_id = ?", *stageID)
	}
	err = tx.
		Order("created_at ASC").
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

func (i impl) Delete(candidateID, id string) error {
	err := i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.GeneratedQuestion{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return err
	}
	return nil
}
