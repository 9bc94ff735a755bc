package jobpostingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobPosting) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.JobPosting, error)
	GetByIDWithStages(id string) (*dbmodels.JobPosting, error)
	List() (list []dbmodels.JobPosting, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobPosting) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.JobPosting{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.JobPosting, error) {
	rec := dbmodels.JobPosting{}
	err := i.db.
		Model(&dbmodels.JobPosting{}).
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

func (i impl) GetByIDWithStages(id string) (*dbmodels.JobPosting, error) {
	rec := dbmodels.JobPosting{}
	err := i.db.
		Model(&dbmodels.JobPosting{}).
		Preload("SelectionStages", func(db *gorm.DB) *gorm.DB {
			return db.Order("stage_order ASC")
		}).
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

func (i impl) List() (list []dbmodels.JobPosting, err error) {
	list = []dbmodels.JobPosting{}
	err = i.db.
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

func (i impl) Delete(id string) error {
	delRec := dbmodels.JobPosting{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&delRec).
		Error
	if err != nil {
		return err
	}
	return nil
}
