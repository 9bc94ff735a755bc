package question

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"recruit-flow-backend/lib/knowledge"
	gptmodels "recruit-flow-backend/models/api/gpt"
	questionapimodels "recruit-flow-backend/models/api/question"
	dbmodels "recruit-flow-backend/models/db"
)

type fixedBackend struct {
	response string
	err      error
}

func (f fixedBackend) GenerateStructured(_ context.Context, _, _ string, _ gptmodels.GenerationOptions) (string, error) {
	return f.response, f.err
}

type recordingStore struct {
	created []dbmodels.GeneratedQuestion
}

func (r *recordingStore) CreateBatch(recs []dbmodels.GeneratedQuestion) error {
	r.created = append(r.created, recs...)
	return nil
}
func (r *recordingStore) ListByCandidate(string, *string) ([]dbmodels.GeneratedQuestion, error) {
	return nil, nil
}
func (r *recordingStore) Delete(string, string) error { return nil }

type fixedCandidates struct {
	rec *dbmodels.Candidate
}

func (f fixedCandidates) Create(dbmodels.Candidate) (string, error)   { return "", nil }
func (f fixedCandidates) Update(string, map[string]interface{}) error { return nil }
func (f fixedCandidates) GetByID(string) (*dbmodels.Candidate, error) { return f.rec, nil }
func (f fixedCandidates) List(dbmodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	return nil, nil
}
func (f fixedCandidates) LastNumberByPrefix(string) (string, error) { return "", nil }
func (f fixedCandidates) Delete(string) error                       { return nil }

type fixedStages struct {
	rec *dbmodels.SelectionStage
}

func (f fixedStages) Create(dbmodels.SelectionStage) (string, error)           { return "", nil }
func (f fixedStages) Update(string, string, map[string]interface{}) error      { return nil }
func (f fixedStages) GetByID(string, string) (*dbmodels.SelectionStage, error) { return f.rec, nil }
func (f fixedStages) GetByOrder(string, int) (*dbmodels.SelectionStage, error) {
	return nil, nil
}
func (f fixedStages) List(string) ([]dbmodels.SelectionStage, error) { return nil, nil }
func (f fixedStages) Delete(string, string) error                    { return nil }

type nullEvaluations struct{}

func (nullEvaluations) Create(dbmodels.Evaluation) (string, error)       { return "", nil }
func (nullEvaluations) GetByID(string) (*dbmodels.Evaluation, error)     { return nil, nil }
func (nullEvaluations) ListByCandidate(string) ([]dbmodels.Evaluation, error) {
	return nil, nil
}
func (nullEvaluations) Latest(string) (*dbmodels.Evaluation, error) { return nil, nil }

func testEngine(backend fixedBackend, store *recordingStore) impl {
	stageID := "stage-1"
	return impl{
		backend: backend,
		know:    &knowledge.Knowledge{JobTitle: "Backend Engineer"},
		store:   store,
		candidates: fixedCandidates{rec: &dbmodels.Candidate{
			BaseModel:      dbmodels.BaseModel{ID: "cand-1"},
			JobPostingID:   "posting-1",
			Name:           "Jordan Lee",
			ResumeText:     "five years of Go backend development",
			CurrentStageID: &stageID,
			CurrentStage: &dbmodels.SelectionStage{
				BaseModel:    dbmodels.BaseModel{ID: stageID},
				JobPostingID: "posting-1",
				StageOrder:   2,
				Name:         "First interview",
			},
		}},
		stages:      fixedStages{},
		evaluations: nullEvaluations{},
	}
}

func TestGenerate(t *testing.T) {
	t.Run("parses backend questions", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{response: "```json\n" + `[
  {"question": "Walk me through your largest Go service.", "purpose": "Depth of backend experience", "category": "technical_skill"},
  {"question": "How did you split responsibilities in your last team?", "purpose": "Teamwork", "category": "communication"}
]` + "\n```"}, store)

		list, err := engine.Generate(context.Background(), "cand-1", questionapimodels.GenerateRequest{Count: 2})
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Walk me through your largest Go service.", list[0].Question)
		require.Equal(t, "ai", list[0].GeneratedBy)
		require.Len(t, store.created, 2)
		require.Equal(t, "cand-1", store.created[0].CandidateID)
	})

	t.Run("backend failure falls back to the bank", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{err: errors.New("backend unavailable")}, store)

		list, err := engine.Generate(context.Background(), "cand-1", questionapimodels.GenerateRequest{Count: 15})
		require.NoError(t, err)
		require.Len(t, list, 15)
		for _, view := range list {
			require.Equal(t, "fallback", view.GeneratedBy)
		}
		// the bank wraps around after ten questions
		require.Equal(t, fallbackBank[0].Question, list[10].Question)
		require.Equal(t, fallbackBank[4].Question, list[14].Question)
	})

	t.Run("unparseable output falls back to the bank", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{response: "here are some questions: 1) ..."}, store)

		list, err := engine.Generate(context.Background(), "cand-1", questionapimodels.GenerateRequest{Count: 3})
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "fallback", list[0].GeneratedBy)
		require.Equal(t, fallbackBank[0].Question, list[0].Question)
	})

	t.Run("zero count gets the default", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{err: errors.New("backend unavailable")}, store)

		list, err := engine.Generate(context.Background(), "cand-1", questionapimodels.GenerateRequest{})
		require.NoError(t, err)
		require.Len(t, list, defaultQuestionCount)
	})

	t.Run("unknown candidate fails", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{response: "[]"}, store)
		engine.candidates = fixedCandidates{rec: nil}

		_, err := engine.Generate(context.Background(), "cand-1", questionapimodels.GenerateRequest{Count: 2})
		require.Error(t, err)
		require.Empty(t, store.created)
	})

	t.Run("explicit stage must exist", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{response: "[]"}, store)
		engine.stages = fixedStages{rec: nil}

		_, err := engine.Generate(context.Background(), "cand-1", questionapimodels.GenerateRequest{StageID: "stage-missing", Count: 2})
		require.Error(t, err)
	})
}

func TestStageGuidance(t *testing.T) {
	require.Contains(t, stageGuidance("Document screening"), "resume")
	require.Contains(t, stageGuidance("First interview"), "technical skills")
	require.Contains(t, stageGuidance("2nd interview"), "leadership")
	require.Contains(t, stageGuidance("Final interview"), "career plans")
	require.Contains(t, stageGuidance("Coding exercise"), "motivation and drive")
}
