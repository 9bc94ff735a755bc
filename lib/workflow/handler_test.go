package workflow

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	progressstore "recruit-flow-backend/lib/candidate/progress-store"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	selectionstagestore "recruit-flow-backend/lib/job-posting/selection-stage-store"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

type fakeState struct {
	candidates map[string]*dbmodels.Candidate
	stages     []dbmodels.SelectionStage
	progress   map[string]models.ProgressStatus // key candidateID+"/"+stageID
}

func newFakeState() *fakeState {
	return &fakeState{
		candidates: map[string]*dbmodels.Candidate{},
		progress:   map[string]models.ProgressStatus{},
	}
}

func (s *fakeState) snapshot() fakeState {
	copied := fakeState{
		candidates: map[string]*dbmodels.Candidate{},
		stages:     append([]dbmodels.SelectionStage{}, s.stages...),
		progress:   map[string]models.ProgressStatus{},
	}
	for k, v := range s.candidates {
		c := *v
		copied.candidates[k] = &c
	}
	for k, v := range s.progress {
		copied.progress[k] = v
	}
	return copied
}

type fakeCandidates struct{ s *fakeState }

func (f fakeCandidates) Create(rec dbmodels.Candidate) (string, error) { return rec.ID, nil }
func (f fakeCandidates) Update(id string, updMap map[string]interface{}) error {
	rec := f.s.candidates[id]
	if stageID, ok := updMap["current_stage_id"].(string); ok {
		rec.CurrentStageID = &stageID
	}
	return nil
}
func (f fakeCandidates) GetByID(id string) (*dbmodels.Candidate, error) {
	rec, ok := f.s.candidates[id]
	if !ok {
		return nil, nil
	}
	c := *rec
	return &c, nil
}
func (f fakeCandidates) List(dbmodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	return nil, nil
}
func (f fakeCandidates) LastNumberByPrefix(string) (string, error) { return "", nil }
func (f fakeCandidates) Delete(string) error                       { return nil }

var _ candidatestore.Provider = fakeCandidates{}

type fakeStages struct{ s *fakeState }

func (f fakeStages) Create(rec dbmodels.SelectionStage) (string, error) { return rec.ID, nil }
func (f fakeStages) Update(string, string, map[string]interface{}) error {
	return nil
}
func (f fakeStages) GetByID(postingID, id string) (*dbmodels.SelectionStage, error) {
	for _, stage := range f.s.stages {
		if stage.ID == id && stage.JobPostingID == postingID {
			found := stage
			return &found, nil
		}
	}
	return nil, nil
}
func (f fakeStages) GetByOrder(postingID string, order int) (*dbmodels.SelectionStage, error) {
	for _, stage := range f.s.stages {
		if stage.JobPostingID == postingID && stage.StageOrder == order {
			found := stage
			return &found, nil
		}
	}
	return nil, nil
}
func (f fakeStages) List(string) ([]dbmodels.SelectionStage, error) { return f.s.stages, nil }
func (f fakeStages) Delete(string, string) error                    { return nil }

var _ selectionstagestore.Provider = fakeStages{}

type fakeProgress struct{ s *fakeState }

func (f fakeProgress) GetByPair(candidateID, stageID string) (*dbmodels.CandidateStageProgress, error) {
	status, ok := f.s.progress[candidateID+"/"+stageID]
	if !ok {
		return nil, nil
	}
	return &dbmodels.CandidateStageProgress{
		CandidateID:      candidateID,
		SelectionStageID: stageID,
		Status:           status,
	}, nil
}
func (f fakeProgress) ListByCandidate(string) ([]dbmodels.CandidateStageProgress, error) {
	return nil, nil
}
func (f fakeProgress) Upsert(candidateID, stageID string, status models.ProgressStatus, notes *string) error {
	f.s.progress[candidateID+"/"+stageID] = status
	return nil
}

var _ progressstore.Provider = fakeProgress{}

func newEngine(s *fakeState) impl {
	return impl{
		tx: func(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
			// A failed advancement must leave state untouched.
			before := s.snapshot()
			if err := fc(nil); err != nil {
				*s = before
				return err
			}
			return nil
		},
		candidates: func(*gorm.DB) candidatestore.Provider { return fakeCandidates{s} },
		stages:     func(*gorm.DB) selectionstagestore.Provider { return fakeStages{s} },
		progress:   func(*gorm.DB) progressstore.Provider { return fakeProgress{s} },
	}
}

func fourStagePosting(s *fakeState) {
	names := []string{"Document screening", "First interview", "Second interview", "Final interview"}
	for idx, name := range names {
		s.stages = append(s.stages, dbmodels.SelectionStage{
			BaseModel:    dbmodels.BaseModel{ID: "stage-" + name},
			JobPostingID: "posting-1",
			StageOrder:   idx + 1,
			Name:         name,
		})
	}
}

func candidateAt(s *fakeState, stageID string) {
	c := &dbmodels.Candidate{
		BaseModel:    dbmodels.BaseModel{ID: "cand-1"},
		JobPostingID: "posting-1",
		Name:         "Test Candidate",
	}
	if stageID != "" {
		c.CurrentStageID = &stageID
	}
	s.candidates["cand-1"] = c
}

func TestAdvance(t *testing.T) {
	t.Run("advances through stages marking progress", func(t *testing.T) {
		s := newFakeState()
		fourStagePosting(s)
		candidateAt(s, "stage-Document screening")
		engine := newEngine(s)

		resp, err := engine.Advance("cand-1")
		require.NoError(t, err)
		require.Equal(t, "Document screening", resp.PreviousStage)
		require.Equal(t, "First interview", resp.CurrentStage)

		resp, err = engine.Advance("cand-1")
		require.NoError(t, err)
		require.Equal(t, "First interview", resp.PreviousStage)
		require.Equal(t, "Second interview", resp.CurrentStage)

		require.Equal(t, models.ProgressStatusCompleted, s.progress["cand-1/stage-Document screening"])
		require.Equal(t, models.ProgressStatusCompleted, s.progress["cand-1/stage-First interview"])
		require.Equal(t, models.ProgressStatusInProgress, s.progress["cand-1/stage-Second interview"])
		require.Equal(t, "stage-Second interview", *s.candidates["cand-1"].CurrentStageID)
	})

	t.Run("final stage fails and leaves state unchanged", func(t *testing.T) {
		s := newFakeState()
		fourStagePosting(s)
		candidateAt(s, "stage-Final interview")
		s.progress["cand-1/stage-Final interview"] = models.ProgressStatusInProgress
		engine := newEngine(s)

		_, err := engine.Advance("cand-1")
		require.ErrorIs(t, err, ErrNoNextStage)
		require.Equal(t, "stage-Final interview", *s.candidates["cand-1"].CurrentStageID)
		require.Equal(t, models.ProgressStatusInProgress, s.progress["cand-1/stage-Final interview"])
		require.Len(t, s.progress, 1)

		// idempotent failure
		_, err = engine.Advance("cand-1")
		require.ErrorIs(t, err, ErrNoNextStage)
	})

	t.Run("no current stage", func(t *testing.T) {
		s := newFakeState()
		fourStagePosting(s)
		candidateAt(s, "")
		engine := newEngine(s)

		_, err := engine.Advance("cand-1")
		require.ErrorIs(t, err, ErrNoCurrentStage)
	})

	t.Run("dangling current stage reference", func(t *testing.T) {
		s := newFakeState()
		fourStagePosting(s)
		candidateAt(s, "stage-deleted")
		engine := newEngine(s)

		_, err := engine.Advance("cand-1")
		require.ErrorIs(t, err, ErrNoCurrentStage)
	})

	t.Run("order gap reports no next stage", func(t *testing.T) {
		s := newFakeState()
		s.stages = []dbmodels.SelectionStage{
			{BaseModel: dbmodels.BaseModel{ID: "stage-1"}, JobPostingID: "posting-1", StageOrder: 1, Name: "Screening"},
			{BaseModel: dbmodels.BaseModel{ID: "stage-3"}, JobPostingID: "posting-1", StageOrder: 3, Name: "Final interview"},
		}
		candidateAt(s, "stage-1")
		engine := newEngine(s)

		_, err := engine.Advance("cand-1")
		require.ErrorIs(t, err, ErrNoNextStage)
	})
}

func TestSetStageStatus(t *testing.T) {
	s := newFakeState()
	fourStagePosting(s)
	candidateAt(s, "stage-Document screening")
	engine := newEngine(s)

	notes := "keep an eye on notice period"
	err := engine.SetStageStatus("cand-1", "stage-First interview", models.ProgressStatusSkipped, &notes)
	require.NoError(t, err)
	require.Equal(t, models.ProgressStatusSkipped, s.progress["cand-1/stage-First interview"])

	// calling twice with the same arguments yields the same end state
	err = engine.SetStageStatus("cand-1", "stage-First interview", models.ProgressStatusSkipped, &notes)
	require.NoError(t, err)
	require.Equal(t, models.ProgressStatusSkipped, s.progress["cand-1/stage-First interview"])

	err = engine.SetStageStatus("cand-1", "stage-missing", models.ProgressStatusCompleted, nil)
	require.Error(t, err)
}
