package questionapimodels

import (
	"github.com/pkg/errors"
	dbmodels "recruit-flow-backend/models/db"
)

type GenerateRequest struct {
	StageID string `json:"stage_id"`
	Count   int    `json:"count"`
}

func (r GenerateRequest) Validate() error {
	if r.Count < 0 {
		return errors.New("count must not be negative")
	}
	return nil
}

type QuestionView struct {
	ID          string `json:"id"`
	StageID     string `json:"stage_id,omitempty"`
	Question    string `json:"question"`
	Purpose     string `json:"purpose"`
	Category    string `json:"category"`
	GeneratedBy string `json:"generated_by"`
}

func Convert(rec dbmodels.GeneratedQuestion) QuestionView {
	view := QuestionView{
		ID:          rec.ID,
		Question:    rec.QuestionText,
		Purpose:     rec.Purpose,
		Category:    string(rec.Category),
		GeneratedBy: rec.GeneratedBy,
	}
	if rec.SelectionStageID != nil {
		view.StageID = *rec.SelectionStageID
	}
	return view
}
