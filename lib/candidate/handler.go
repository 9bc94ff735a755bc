package candidate

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"recruit-flow-backend/db"
	progressstore "recruit-flow-backend/lib/candidate/progress-store"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	selectionstagestore "recruit-flow-backend/lib/job-posting/selection-stage-store"
	"recruit-flow-backend/models"
	candidateapimodels "recruit-flow-backend/models/api/candidate"
	dbmodels "recruit-flow-backend/models/db"
)

// allocateAttempts bounds the retry loop on candidate-number collisions.
// Concurrent allocations race on the read-then-increment; the unique index
// on candidate_number detects the loser, which re-reads and retries.
const allocateAttempts = 3

type Provider interface {
	Create(req candidateapimodels.CandidateCreateRequest) (view candidateapimodels.CandidateView, err error)
	Update(id string, req candidateapimodels.CandidateUpdateRequest) error
	UpdateStatus(id string, status models.CandidateStatus) error
	GetByID(id string) (view candidateapimodels.CandidateView, err error)
	List(filter dbmodels.CandidateFilter) (list []candidateapimodels.CandidateView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    candidatestore.NewInstance(db.DB),
		progress: progressstore.NewInstance(db.DB),
		stages:   selectionstagestore.NewInstance(db.DB),
	}
}

type impl struct {
	store    candidatestore.Provider
	progress progressstore.Provider
	stages   selectionstagestore.Provider
}

func (i impl) Create(req candidateapimodels.CandidateCreateRequest) (view candidateapimodels.CandidateView, err error) {
	rec := dbmodels.Candidate{
		JobPostingID:    req.JobPostingID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CandidateNumber: req.CandidateNumber,
		OverallStatus:   models.CandidateStatusInProgress,
		Notes:           req.Notes,
	}

	// New candidates start at the first stage of the posting when one exists.
	firstStage, err := i.stages.GetByOrder(req.JobPostingID, 1)
	if err != nil {
		return view, err
	}
	if firstStage != nil {
		rec.CurrentStageID = &firstStage.ID
	}

	created, err := i.createWithNumber(rec)
	if err != nil {
		return view, err
	}
	if firstStage != nil {
		err = i.progress.Upsert(created.ID, firstStage.ID, models.ProgressStatusInProgress, nil)
		if err != nil {
			log.WithError(err).WithField("candidate_id", created.ID).Error("initial stage progress not recorded")
		}
	}
	return candidateapimodels.Convert(created), nil
}

// createWithNumber inserts the candidate, allocating a number when the
// request carries none. Allocation and insert run in one transaction; a
// duplicate-number conflict re-reads the sequence and tries again.
func (i impl) createWithNumber(rec dbmodels.Candidate) (created dbmodels.Candidate, err error) {
	if rec.CandidateNumber != "" {
		id, err := i.store.Create(rec)
		if err != nil {
			return created, err
		}
		rec.ID = id
		return rec, nil
	}

	for attempt := 0; attempt < allocateAttempts; attempt++ {
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			txStore := candidatestore.NewInstance(tx)
			latest, err := txStore.LastNumberByPrefix(numberPrefix(time.Now()))
			if err != nil {
				return err
			}
			rec.CandidateNumber = nextCandidateNumber(time.Now(), latest)
			id, err := txStore.Create(rec)
			if err != nil {
				return err
			}
			rec.ID = id
			return nil
		})
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return created, err
		}
		log.WithField("candidate_number", rec.CandidateNumber).Warn("candidate number collision, retrying allocation")
		rec.ID = ""
	}
	return created, errors.Wrap(err, "candidate number allocation failed after retries")
}

func (i impl) Update(id string, req candidateapimodels.CandidateUpdateRequest) error {
	updMap := map[string]interface{}{}
	if req.Name != nil {
		updMap["name"] = *req.Name
	}
	if req.Email != nil {
		updMap["email"] = *req.Email
	}
	if req.Phone != nil {
		updMap["phone"] = *req.Phone
	}
	if req.Notes != nil {
		updMap["notes"] = *req.Notes
	}
	return i.store.Update(id, updMap)
}

func (i impl) UpdateStatus(id string, status models.CandidateStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("candidate not found")
	}
	return i.store.Update(id, map[string]interface{}{
		"overall_status": status,
	})
}

func (i impl) GetByID(id string) (view candidateapimodels.CandidateView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, errors.New("candidate not found")
	}
	view = candidateapimodels.Convert(*rec)

	progressList, err := i.progress.ListByCandidate(id)
	if err != nil {
		return view, err
	}
	for _, item := range progressList {
		progressView := candidateapimodels.StageProgressView{
			StageID: item.SelectionStageID,
			Status:  string(item.Status),
			Notes:   item.Notes,
		}
		if item.SelectionStage != nil {
			progressView.StageOrder = item.SelectionStage.StageOrder
			progressView.StageName = item.SelectionStage.Name
		}
		view.StageProgress = append(view.StageProgress, progressView)
	}
	// stage_order ascending, like the posting's stage list
	sort.Slice(view.StageProgress, func(a, b int) bool {
		return view.StageProgress[a].StageOrder < view.StageProgress[b].StageOrder
	})
	return view, nil
}

func (i impl) List(filter dbmodels.CandidateFilter) (list []candidateapimodels.CandidateView, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	list = make([]candidateapimodels.CandidateView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, candidateapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}
