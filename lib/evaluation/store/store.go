package evaluationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	// Create persists an evaluation. Rows are immutable once created.
	Create(rec dbmodels.Evaluation) (id string, err error)
	GetByID(id string) (*dbmodels.Evaluation, error)
	ListByCandidate(candidateID string) (list []dbmodels.Evaluation, err error)
	// Latest returns the most recent evaluation for the candidate, nil when
	// none exists.
	Latest(candidateID string) (*dbmodels.Evaluation, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Evaluation) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Evaluation, error) {
	rec := dbmodels.Evaluation{}
	err := i.db.
		Model(&dbmodels.Evaluation{}).
		Where("id = ?", id).
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

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.Evaluation, err error) {
	list = []dbmodels.Evaluation{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
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

func (i impl) Latest(candidateID string) (*dbmodels.Evaluation, error) {
	rec := dbmodels.Evaluation{}
	err := i.db.
		Model(&dbmodels.Evaluation{}).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
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
