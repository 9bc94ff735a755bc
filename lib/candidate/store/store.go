package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Candidate, error)
	List(filter dbmodels.CandidateFilter) (list []dbmodels.Candidate, err error)
	// LastNumberByPrefix returns the highest existing candidate number with
	// the given prefix, empty when none exists. Ordered by length before
	// value so a widened sequence past 9999 still wins over the zero-padded
	// four-digit ones.
	LastNumberByPrefix(prefix string) (string, error)
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

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.
		Create(&rec).
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
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Preload("CurrentStage").
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

func (i impl) List(filter dbmodels.CandidateFilter) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Preload("CurrentStage")
	if filter.JobPostingID != "" {
		tx = tx.Where("job_posting_id = ?", filter.JobPostingID)
	}
	if filter.Status != "" {
		tx = tx.Where("overall_status = ?", filter.Status)
	}
	if filter.Search != "" {
		tx = tx.Where("name ILIKE ? OR candidate_number ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	err = tx.
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

func (i impl) LastNumberByPrefix(prefix string) (string, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("candidate_number LIKE ?", prefix+"%").
		Order("length(candidate_number) DESC, candidate_number DESC").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return rec.CandidateNumber, nil
}

func (i impl) Delete(id string) error {
	delRec := dbmodels.Candidate{
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
