package postingapimodels

import (
	"encoding/json"

	"github.com/pkg/errors"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

type PostingCreateRequest struct {
	Title           string          `json:"title"`
	Department      string          `json:"department"`
	EmploymentType  string          `json:"employment_type"`
	Description     string          `json:"description"`
	Requirements    json.RawMessage `json:"requirements"`
	PreferredSkills json.RawMessage `json:"preferred_skills"`
	CompanyValues   json.RawMessage `json:"company_values"`
	OwnerEmail      string          `json:"owner_email"`
	// When true the default stage template is attached to the new posting.
	WithDefaultStages bool `json:"with_default_stages"`
}

func (r PostingCreateRequest) Validate() error {
	if r.Title == "" {
		return errors.New("posting title is required")
	}
	return nil
}

func (r PostingCreateRequest) ToRecord() dbmodels.JobPosting {
	rec := dbmodels.JobPosting{
		Title:          r.Title,
		Department:     r.Department,
		EmploymentType: r.EmploymentType,
		Description:    r.Description,
		OwnerEmail:     r.OwnerEmail,
		IsActive:       true,
	}
	if len(r.Requirements) != 0 {
		rec.Requirements = string(r.Requirements)
	}
	if len(r.PreferredSkills) != 0 {
		rec.PreferredSkills = string(r.PreferredSkills)
	}
	if len(r.CompanyValues) != 0 {
		rec.CompanyValues = string(r.CompanyValues)
	}
	return rec
}

type PostingUpdateRequest struct {
	Title          *string `json:"title"`
	Department     *string `json:"department"`
	EmploymentType *string `json:"employment_type"`
	Description    *string `json:"description"`
	OwnerEmail     *string `json:"owner_email"`
	IsActive       *bool   `json:"is_active"`
}

type StageCreateRequest struct {
	Name              string   `json:"name"`
	StageType         string   `json:"stage_type"`
	Description       string   `json:"description"`
	EvaluationFocus   []string `json:"evaluation_focus"`
	RequiredDocuments []string `json:"required_documents"`
}

func (r StageCreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("stage name is required")
	}
	return nil
}

type PostingView struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Department     string      `json:"department"`
	EmploymentType string      `json:"employment_type"`
	Description    string      `json:"description"`
	IsActive       bool        `json:"is_active"`
	Stages         []StageView `json:"stages,omitempty"`
}

type StageView struct {
	ID                string   `json:"id"`
	StageOrder        int      `json:"stage_order"`
	Name              string   `json:"name"`
	StageType         string   `json:"stage_type"`
	EvaluationFocus   []string `json:"evaluation_focus,omitempty"`
	RequiredDocuments []string `json:"required_documents,omitempty"`
}

func Convert(rec dbmodels.JobPosting) PostingView {
	view := PostingView{
		ID:             rec.ID,
		Title:          rec.Title,
		Department:     rec.Department,
		EmploymentType: rec.EmploymentType,
		Description:    rec.Description,
		IsActive:       rec.IsActive,
	}
	for _, stage := range rec.SelectionStages {
		view.Stages = append(view.Stages, ConvertStage(stage))
	}
	return view
}

func ConvertStage(rec dbmodels.SelectionStage) StageView {
	return StageView{
		ID:                rec.ID,
		StageOrder:        rec.StageOrder,
		Name:              rec.Name,
		StageType:         string(rec.StageType),
		EvaluationFocus:   []string(rec.EvaluationFocus),
		RequiredDocuments: []string(rec.RequiredDocuments),
	}
}

func StageTypeFromString(value string) models.StageType {
	switch models.StageType(value) {
	case models.StageTypeDocumentScreening, models.StageTypeFirstInterview,
		models.StageTypeSecondInterview, models.StageTypeFinalInterview,
		models.StageTypeOffer:
		return models.StageType(value)
	}
	return models.StageTypeCustom
}
