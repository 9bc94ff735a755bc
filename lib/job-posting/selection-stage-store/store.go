package selectionstagestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.SelectionStage) (id string, err error)
	Update(postingID, id string, updMap map[string]interface{}) error
	GetByID(postingID, id string) (*dbmodels.SelectionStage, error)
	GetByOrder(postingID string, order int) (*dbmodels.SelectionStage, error)
	List(postingID string) (list []dbmodels.SelectionStage, err error)
	Delete(postingID, id string) (err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create appends the stage at max(stage_order)+1 within the posting.
func (i impl) Create(rec dbmodels.SelectionStage) (id string, err error) {
	if rec.StageOrder == 0 {
		maxOrder, err := i.maxOrder(rec.JobPostingID)
		if err != nil {
			return "", err
		}
		rec.StageOrder = maxOrder + 1
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(postingID, id string) (*dbmodels.SelectionStage, error) {
	rec := dbmodels.SelectionStage{}
	err := i.db.
		Model(&dbmodels.SelectionStage{}).
		Where("id = ?", id).
		Where("job_posting_id = ?", postingID).
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

// GetByOrder looks up the stage with the exact given order. Callers advance
// by current order + 1; gaps in the sequence are not bridged.
func (i impl) GetByOrder(postingID string, order int) (*dbmodels.SelectionStage, error) {
	rec := dbmodels.SelectionStage{}
	err := i.db.
		Model(&dbmodels.SelectionStage{}).
		Where("job_posting_id = ?", postingID).
		Where("stage_order = ?", order).
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

func (i impl) Update(postingID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.SelectionStage{}).
		Where("id = ?", id).
		Where("job_posting_id = ?", postingID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(postingID string) (list []dbmodels.SelectionStage, err error) {
	list = []dbmodels.SelectionStage{}
	err = i.db.
		Where("job_posting_id = ?", postingID).
		Order("stage_order ASC").
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

// Delete refuses to remove a stage that is still some candidate's current
// stage.
func (i impl) Delete(postingID, id string) (err error) {
	var refCount int64
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Where("current_stage_id = ?", id).
		Count(&refCount).
		Error
	if err != nil {
		return err
	}
	if refCount > 0 {
		return errors.New("stage is referenced by candidates and can not be deleted")
	}
	delRec := dbmodels.SelectionStage{
		BaseModel:    dbmodels.BaseModel{ID: id},
		JobPostingID: postingID,
	}
	err = i.db.
		Delete(&delRec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) maxOrder(postingID string) (order int, err error) {
	type result struct {
		MaxOrder int
	}
	res := result{}
	err = i.db.Table("selection_stages").
		Where("job_posting_id = ?", postingID).
		Select("max(stage_order) as max_order").Find(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return res.MaxOrder, nil
}
