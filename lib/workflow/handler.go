package workflow

import (
	"database/sql"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"recruit-flow-backend/db"
	progressstore "recruit-flow-backend/lib/candidate/progress-store"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	selectionstagestore "recruit-flow-backend/lib/job-posting/selection-stage-store"
	"recruit-flow-backend/models"
	candidateapimodels "recruit-flow-backend/models/api/candidate"
)

var (
	// ErrNoCurrentStage means the candidate has no resolvable current stage.
	ErrNoCurrentStage = errors.New("candidate has no current stage")
	// ErrNoNextStage means the candidate is already at the final stage.
	ErrNoNextStage = errors.New("no next stage available, this is the final stage")
)

type Provider interface {
	// Advance moves the candidate to the stage with order current+1:
	// the current stage's progress becomes completed, the next stage's
	// progress becomes in_progress, and the candidate pointer is repointed.
	// All three mutations are applied in one transaction.
	Advance(candidateID string) (resp candidateapimodels.AdvanceResponse, err error)
	// SetStageStatus upserts the progress record for the pair. Idempotent.
	SetStageStatus(candidateID, stageID string, status models.ProgressStatus, notes *string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		tx: db.DB.Transaction,
		candidates: func(tx *gorm.DB) candidatestore.Provider {
			return candidatestore.NewInstance(tx)
		},
		stages: func(tx *gorm.DB) selectionstagestore.Provider {
			return selectionstagestore.NewInstance(tx)
		},
		progress: func(tx *gorm.DB) progressstore.Provider {
			return progressstore.NewInstance(tx)
		},
	}
}

// Store factories are bound to the transaction handle so that all mutations
// of one advancement share its boundary.
type impl struct {
	tx         func(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
	candidates func(tx *gorm.DB) candidatestore.Provider
	stages     func(tx *gorm.DB) selectionstagestore.Provider
	progress   func(tx *gorm.DB) progressstore.Provider
}

func (i impl) Advance(candidateID string) (resp candidateapimodels.AdvanceResponse, err error) {
	err = i.tx(func(tx *gorm.DB) error {
		candidateStore := i.candidates(tx)
		stageStore := i.stages(tx)
		progressStore := i.progress(tx)

		candidate, err := candidateStore.GetByID(candidateID)
		if err != nil {
			return err
		}
		if candidate == nil {
			return errors.New("candidate not found")
		}
		if candidate.CurrentStageID == nil {
			return ErrNoCurrentStage
		}
		currentStage, err := stageStore.GetByID(candidate.JobPostingID, *candidate.CurrentStageID)
		if err != nil {
			return err
		}
		if currentStage == nil {
			return ErrNoCurrentStage
		}

		// Exact order+1 lookup. A gap in the sequence reports "no next
		// stage" even when later stages exist; gap handling belongs to
		// whoever edits the stage list.
		nextStage, err := stageStore.GetByOrder(candidate.JobPostingID, currentStage.StageOrder+1)
		if err != nil {
			return err
		}
		if nextStage == nil {
			return ErrNoNextStage
		}

		if err := progressStore.Upsert(candidateID, currentStage.ID, models.ProgressStatusCompleted, nil); err != nil {
			return err
		}
		if err := progressStore.Upsert(candidateID, nextStage.ID, models.ProgressStatusInProgress, nil); err != nil {
			return err
		}
		if err := candidateStore.Update(candidateID, map[string]interface{}{
			"current_stage_id": nextStage.ID,
		}); err != nil {
			return err
		}

		resp = candidateapimodels.AdvanceResponse{
			PreviousStage: currentStage.Name,
			CurrentStage:  nextStage.Name,
		}
		return nil
	})
	if err != nil {
		return candidateapimodels.AdvanceResponse{}, err
	}
	return resp, nil
}

func (i impl) SetStageStatus(candidateID, stageID string, status models.ProgressStatus, notes *string) error {
	candidate, err := i.candidates(db.DB).GetByID(candidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return errors.New("candidate not found")
	}
	stage, err := i.stages(db.DB).GetByID(candidate.JobPostingID, stageID)
	if err != nil {
		return err
	}
	if stage == nil {
		return errors.New("stage not found")
	}
	return i.progress(db.DB).Upsert(candidateID, stageID, status, notes)
}
