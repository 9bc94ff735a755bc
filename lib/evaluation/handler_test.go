package evaluation

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"recruit-flow-backend/lib/knowledge"
	evaluationapimodels "recruit-flow-backend/models/api/evaluation"
	gptmodels "recruit-flow-backend/models/api/gpt"
	dbmodels "recruit-flow-backend/models/db"
)

const validOutput = `{
  "evaluation_format": {
    "overall_score": 7.5,
    "recommendation": "recommend",
    "sections": {
      "technical_skills": {"score": 8, "max_score": 10, "summary": "solid Go and SQL", "evidence": ["five years backend work"]},
      "experience_quality": {"score": 7, "max_score": 10, "summary": "led two migrations"},
      "cultural_fit": {"score": 7, "max_score": 10, "summary": "collaborative tone"},
      "growth_potential": {"score": 8, "max_score": 10, "summary": "steady skill growth"}
    },
    "strengths": ["backend depth"],
    "concerns": ["no cloud experience"],
    "next_steps": {
      "proceed_to_interview": true,
      "interview_focus_areas": ["cloud exposure"],
      "questions_to_clarify": ["notice period"]
    }
  }
}`

type fixedExtractor struct {
	text string
	err  error
}

func (f fixedExtractor) Extract([]byte) (string, error) { return f.text, f.err }

type fixedBackend struct {
	response string
	err      error
}

func (f fixedBackend) GenerateStructured(_ context.Context, _, _ string, _ gptmodels.GenerationOptions) (string, error) {
	return f.response, f.err
}

type recordingStore struct {
	created []dbmodels.Evaluation
}

func (r *recordingStore) Create(rec dbmodels.Evaluation) (string, error) {
	r.created = append(r.created, rec)
	return "eval-1", nil
}
func (r *recordingStore) GetByID(string) (*dbmodels.Evaluation, error) { return nil, nil }
func (r *recordingStore) ListByCandidate(string) ([]dbmodels.Evaluation, error) {
	return nil, nil
}
func (r *recordingStore) Latest(string) (*dbmodels.Evaluation, error) { return nil, nil }

type fixedCandidates struct {
	rec *dbmodels.Candidate
}

func (f fixedCandidates) Create(dbmodels.Candidate) (string, error)           { return "", nil }
func (f fixedCandidates) Update(string, map[string]interface{}) error         { return nil }
func (f fixedCandidates) GetByID(string) (*dbmodels.Candidate, error)         { return f.rec, nil }
func (f fixedCandidates) List(dbmodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	return nil, nil
}
func (f fixedCandidates) LastNumberByPrefix(string) (string, error) { return "", nil }
func (f fixedCandidates) Delete(string) error                       { return nil }

type nullPostings struct{}

func (nullPostings) Create(dbmodels.JobPosting) (string, error)           { return "", nil }
func (nullPostings) Update(string, map[string]interface{}) error          { return nil }
func (nullPostings) GetByID(string) (*dbmodels.JobPosting, error)         { return nil, nil }
func (nullPostings) GetByIDWithStages(string) (*dbmodels.JobPosting, error) {
	return nil, nil
}
func (nullPostings) List() ([]dbmodels.JobPosting, error) { return nil, nil }
func (nullPostings) Delete(string) error                  { return nil }

type nullFiles struct{}

func (nullFiles) UploadResume(context.Context, string, []byte, string) (string, error) {
	return "key-1", nil
}
func (nullFiles) GetResume(context.Context, string) ([]byte, error) { return nil, nil }

type nullMail struct{}

func (nullMail) SendEMail(string, string, string, string) error { return nil }

func testEngine(backend fixedBackend, store *recordingStore) impl {
	return impl{
		extractor: fixedExtractor{text: "five years of Go backend development, SQL, team lead for two migrations"},
		backend:   backend,
		know: &knowledge.Knowledge{
			JobRequirements:    json.RawMessage(`{"job_title": "Backend Engineer"}`),
			EvaluationTemplate: json.RawMessage(`{}`),
			JobTitle:           "Backend Engineer",
		},
		store:      store,
		candidates: fixedCandidates{rec: &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "cand-1"}, Name: "Jordan Lee", CandidateNumber: "C2026080001"}},
		postings:   nullPostings{},
		files:      nullFiles{},
		mail:       nullMail{},
		now: func() time.Time {
			return time.Date(2026, time.August, 20, 9, 30, 0, 0, time.UTC)
		},
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("stamps metadata on a valid response", func(t *testing.T) {
		engine := testEngine(fixedBackend{response: "```json\n" + validOutput + "\n```"}, &recordingStore{})

		result, rawOutput, err := engine.Evaluate(context.Background(), []byte("pdf"), "Jordan Lee")
		require.NoError(t, err)
		require.Equal(t, "Jordan Lee", result.CandidateName)
		require.Equal(t, "2026-08-20 09:30:00", result.EvaluationDate)
		require.Equal(t, "Backend Engineer", result.Position)
		require.Equal(t, 7.5, result.OverallScore)
		require.Equal(t, "recommend", result.Recommendation)
		require.Equal(t, 8.0, result.Sections.TechnicalSkills.Score)
		require.True(t, json.Valid([]byte(rawOutput)))
	})

	t.Run("malformed json fails", func(t *testing.T) {
		engine := testEngine(fixedBackend{response: "```json\n{\"evaluation_format\": {\n```"}, &recordingStore{})

		_, _, err := engine.Evaluate(context.Background(), []byte("pdf"), "Jordan Lee")
		require.Error(t, err)
	})

	t.Run("prose instead of json fails", func(t *testing.T) {
		engine := testEngine(fixedBackend{response: "The candidate looks strong overall."}, &recordingStore{})

		_, _, err := engine.Evaluate(context.Background(), []byte("pdf"), "Jordan Lee")
		require.Error(t, err)
	})

	t.Run("unknown recommendation fails validation", func(t *testing.T) {
		bad := struct {
			EvaluationFormat map[string]interface{} `json:"evaluation_format"`
		}{}
		require.NoError(t, json.Unmarshal([]byte(validOutput), &bad))
		bad.EvaluationFormat["recommendation"] = "hire immediately"
		payload, err := json.Marshal(bad)
		require.NoError(t, err)
		engine := testEngine(fixedBackend{response: string(payload)}, &recordingStore{})

		_, _, err = engine.Evaluate(context.Background(), []byte("pdf"), "Jordan Lee")
		require.Error(t, err)
		require.Contains(t, err.Error(), "recommendation")
	})

	t.Run("missing section fails validation", func(t *testing.T) {
		engine := testEngine(fixedBackend{response: `{"evaluation_format": {"overall_score": 5, "recommendation": "reject", "sections": {}, "next_steps": {"proceed_to_interview": false}}}`}, &recordingStore{})

		_, _, err := engine.Evaluate(context.Background(), []byte("pdf"), "Jordan Lee")
		require.Error(t, err)
	})

	t.Run("backend error propagates", func(t *testing.T) {
		engine := testEngine(fixedBackend{err: errors.New("backend unavailable")}, &recordingStore{})

		_, _, err := engine.Evaluate(context.Background(), []byte("pdf"), "Jordan Lee")
		require.Error(t, err)
	})

	t.Run("extraction error propagates", func(t *testing.T) {
		engine := testEngine(fixedBackend{response: validOutput}, &recordingStore{})
		engine.extractor = fixedExtractor{err: errors.New("no extractable text")}

		_, _, err := engine.Evaluate(context.Background(), []byte("pdf"), "Jordan Lee")
		require.Error(t, err)
	})
}

func TestEvaluateAndSave(t *testing.T) {
	t.Run("persists the evaluation with raw output", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{response: validOutput}, store)

		view, err := engine.EvaluateAndSave(context.Background(), "cand-1", nil, "resume.pdf", []byte("pdf"))
		require.NoError(t, err)
		require.Len(t, store.created, 1)
		require.Equal(t, "cand-1", store.created[0].CandidateID)
		require.Equal(t, 7.5, store.created[0].OverallScore)
		require.True(t, json.Valid([]byte(store.created[0].RawOutput)))
		require.NotEmpty(t, store.created[0].Scores)
		require.Equal(t, "recommend", view.Recommendation)
		require.Contains(t, view.Report, "Jordan Lee")
	})

	t.Run("unavailable file storage does not block the evaluation", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{response: validOutput}, store)
		engine.files = nil

		view, err := engine.EvaluateAndSave(context.Background(), "cand-1", nil, "resume.pdf", []byte("pdf"))
		require.NoError(t, err)
		require.Len(t, store.created, 1)
		require.Equal(t, "recommend", view.Recommendation)
	})

	t.Run("malformed output persists nothing", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{response: "not json at all"}, store)

		_, err := engine.EvaluateAndSave(context.Background(), "cand-1", nil, "resume.pdf", []byte("pdf"))
		require.Error(t, err)
		require.Empty(t, store.created)
	})

	t.Run("unknown candidate fails before evaluation", func(t *testing.T) {
		store := &recordingStore{}
		engine := testEngine(fixedBackend{response: validOutput}, store)
		engine.candidates = fixedCandidates{rec: nil}

		_, err := engine.EvaluateAndSave(context.Background(), "cand-missing", nil, "resume.pdf", []byte("pdf"))
		require.Error(t, err)
		require.Empty(t, store.created)
	})
}

func TestFormat(t *testing.T) {
	t.Run("empty result renders placeholders", func(t *testing.T) {
		report := Format(evaluationapimodels.StructuredEvaluation{})
		require.Contains(t, report, "Candidate:      not recorded")
		require.Contains(t, report, "Position:       not recorded")
		require.Contains(t, report, "Overall score:  0.0/10")
		require.Contains(t, report, "Score:   0.0/10")
		require.Contains(t, report, "Proceed to interview: not recommended")
		require.NotContains(t, report, "Interview focus areas")
	})

	t.Run("full result renders every section", func(t *testing.T) {
		wrapper := outputWrapper{}
		require.NoError(t, json.Unmarshal([]byte(validOutput), &wrapper))
		result := wrapper.EvaluationFormat
		result.CandidateName = "Jordan Lee"
		result.EvaluationDate = "2026-08-20 09:30:00"
		result.Position = "Backend Engineer"

		report := Format(result)
		require.Contains(t, report, "Candidate:      Jordan Lee")
		require.Contains(t, report, "Overall score:  7.5/10")
		require.Contains(t, report, "Recommendation: Recommend")
		require.Contains(t, report, "Technical skills")
		require.Contains(t, report, "solid Go and SQL")
		require.Contains(t, report, "1. cloud exposure")
		require.Contains(t, report, "1. notice period")
	})
}
