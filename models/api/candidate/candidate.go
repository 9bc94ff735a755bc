package candidateapimodels

import (
	"github.com/pkg/errors"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

type CandidateCreateRequest struct {
	JobPostingID string `json:"job_posting_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	// Optional; allocated automatically when empty.
	CandidateNumber string `json:"candidate_number"`
	Notes           string `json:"notes"`
}

func (r CandidateCreateRequest) Validate() error {
	if r.JobPostingID == "" {
		return errors.New("job posting id is required")
	}
	if r.Name == "" {
		return errors.New("candidate name is required")
	}
	return nil
}

type CandidateUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if !models.CandidateStatus(r.Status).IsValid() {
		return errors.Errorf("unknown candidate status: %v", r.Status)
	}
	return nil
}

type StageStatusUpdateRequest struct {
	StageID string `json:"stage_id"`
	Status  string `json:"status"`
	Notes   *string `json:"notes"`
}

func (r StageStatusUpdateRequest) Validate() error {
	if r.StageID == "" {
		return errors.New("stage id is required")
	}
	if r.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

type CandidateView struct {
	ID              string              `json:"id"`
	JobPostingID    string              `json:"job_posting_id"`
	Name            string              `json:"name"`
	Email           string              `json:"email,omitempty"`
	Phone           string              `json:"phone,omitempty"`
	CandidateNumber string              `json:"candidate_number"`
	CurrentStageID  string              `json:"current_stage_id,omitempty"`
	OverallStatus   string              `json:"overall_status"`
	Notes           string              `json:"notes,omitempty"`
	StageProgress   []StageProgressView `json:"stage_progress,omitempty"`
}

type StageProgressView struct {
	StageID    string `json:"stage_id"`
	StageOrder int    `json:"stage_order"`
	StageName  string `json:"stage_name"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

type AdvanceResponse struct {
	PreviousStage string `json:"previous_stage"`
	CurrentStage  string `json:"current_stage"`
}

func Convert(rec dbmodels.Candidate) CandidateView {
	view := CandidateView{
		ID:              rec.ID,
		JobPostingID:    rec.JobPostingID,
		Name:            rec.Name,
		Email:           rec.Email,
		Phone:           rec.Phone,
		CandidateNumber: rec.CandidateNumber,
		OverallStatus:   string(rec.OverallStatus),
		Notes:           rec.Notes,
	}
	if rec.CurrentStageID != nil {
		view.CurrentStageID = *rec.CurrentStageID
	}
	return view
}
