package jobposting

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/db"
	selectionstagestore "recruit-flow-backend/lib/job-posting/selection-stage-store"
	postingstore "recruit-flow-backend/lib/job-posting/store"
	postingapimodels "recruit-flow-backend/models/api/posting"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(req postingapimodels.PostingCreateRequest) (view postingapimodels.PostingView, err error)
	Update(id string, req postingapimodels.PostingUpdateRequest) error
	GetByID(id string) (view postingapimodels.PostingView, err error)
	List() (list []postingapimodels.PostingView, err error)
	Delete(id string) error

	// AddStage appends the stage after the posting's last one.
	AddStage(postingID string, req postingapimodels.StageCreateRequest) (view postingapimodels.StageView, err error)
	ListStages(postingID string) (list []postingapimodels.StageView, err error)
	DeleteStage(postingID, stageID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:  postingstore.NewInstance(db.DB),
		stages: selectionstagestore.NewInstance(db.DB),
	}
}

type impl struct {
	store  postingstore.Provider
	stages selectionstagestore.Provider
}

func (i impl) Create(req postingapimodels.PostingCreateRequest) (view postingapimodels.PostingView, err error) {
	rec := req.ToRecord()
	id, err := i.store.Create(rec)
	if err != nil {
		return view, err
	}
	rec.ID = id

	if req.WithDefaultStages {
		for _, stage := range dbmodels.DefaultSelectionStages {
			stage.JobPostingID = id
			if _, err := i.stages.Create(stage); err != nil {
				log.WithError(err).WithField("posting_id", id).Error("default stage not created")
				return view, errors.Wrap(err, "default stages not attached")
			}
		}
	}
	return i.GetByID(id)
}

func (i impl) Update(id string, req postingapimodels.PostingUpdateRequest) error {
	updMap := map[string]interface{}{}
	if req.Title != nil {
		updMap["title"] = *req.Title
	}
	if req.Department != nil {
		updMap["department"] = *req.Department
	}
	if req.EmploymentType != nil {
		updMap["employment_type"] = *req.EmploymentType
	}
	if req.Description != nil {
		updMap["description"] = *req.Description
	}
	if req.OwnerEmail != nil {
		updMap["owner_email"] = *req.OwnerEmail
	}
	if req.IsActive != nil {
		updMap["is_active"] = *req.IsActive
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (view postingapimodels.PostingView, err error) {
	rec, err := i.store.GetByIDWithStages(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, errors.New("posting not found")
	}
	return postingapimodels.Convert(*rec), nil
}

func (i impl) List() (list []postingapimodels.PostingView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]postingapimodels.PostingView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, postingapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) AddStage(postingID string, req postingapimodels.StageCreateRequest) (view postingapimodels.StageView, err error) {
	posting, err := i.store.GetByID(postingID)
	if err != nil {
		return view, err
	}
	if posting == nil {
		return view, errors.New("posting not found")
	}
	rec := dbmodels.SelectionStage{
		JobPostingID:      postingID,
		Name:              req.Name,
		StageType:         postingapimodels.StageTypeFromString(req.StageType),
		Description:       req.Description,
		EvaluationFocus:   pq.StringArray(req.EvaluationFocus),
		RequiredDocuments: pq.StringArray(req.RequiredDocuments),
	}
	id, err := i.stages.Create(rec)
	if err != nil {
		return view, err
	}
	created, err := i.stages.GetByID(postingID, id)
	if err != nil {
		return view, err
	}
	if created == nil {
		return view, errors.New("stage not found after create")
	}
	return postingapimodels.ConvertStage(*created), nil
}

func (i impl) ListStages(postingID string) (list []postingapimodels.StageView, err error) {
	recs, err := i.stages.List(postingID)
	if err != nil {
		return nil, err
	}
	list = make([]postingapimodels.StageView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, postingapimodels.ConvertStage(rec))
	}
	return list, nil
}

func (i impl) DeleteStage(postingID, stageID string) error {
	return i.stages.Delete(postingID, stageID)
}
