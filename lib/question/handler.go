package question

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	evaluationstore "recruit-flow-backend/lib/evaluation/store"
	gpthandler "recruit-flow-backend/lib/gpt"
	selectionstagestore "recruit-flow-backend/lib/job-posting/selection-stage-store"
	"recruit-flow-backend/lib/knowledge"
	questionstore "recruit-flow-backend/lib/question/store"
	"recruit-flow-backend/models"
	gptmodels "recruit-flow-backend/models/api/gpt"
	questionapimodels "recruit-flow-backend/models/api/question"
	dbmodels "recruit-flow-backend/models/db"
)

const (
	defaultQuestionCount = 10
	// Longer resumes are cut off in the prompt.
	resumePromptLimit = 2000
)

type Provider interface {
	// Generate produces interview questions for the candidate's stage. The
	// generation backend is best effort: any backend or parse failure falls
	// back to the built-in bank, so a usable list always comes back.
	Generate(ctx context.Context, candidateID string, req questionapimodels.GenerateRequest) (list []questionapimodels.QuestionView, err error)
	ListByCandidate(candidateID string, stageID *string) (list []questionapimodels.QuestionView, err error)
	Delete(candidateID, id string) error
}

var Instance Provider

func NewHandler(know *knowledge.Knowledge) {
	Instance = impl{
		backend:     gpthandler.Instance,
		know:        know,
		store:       questionstore.NewInstance(db.DB),
		candidates:  candidatestore.NewInstance(db.DB),
		stages:      selectionstagestore.NewInstance(db.DB),
		evaluations: evaluationstore.NewInstance(db.DB),
		timeout:     time.Duration(config.Conf.AI.RequestTimeout) * time.Second,
	}
}

type impl struct {
	backend     gpthandler.Provider
	know        *knowledge.Knowledge
	store       questionstore.Provider
	candidates  candidatestore.Provider
	stages      selectionstagestore.Provider
	evaluations evaluationstore.Provider
	timeout     time.Duration
}

func (i impl) Generate(ctx context.Context, candidateID string, req questionapimodels.GenerateRequest) (list []questionapimodels.QuestionView, err error) {
	count := req.Count
	if count == 0 {
		count = defaultQuestionCount
	}

	candidate, err := i.candidates.GetByID(candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, errors.New("candidate not found")
	}

	var stageID *string
	stageName := "interview"
	if req.StageID != "" {
		stage, err := i.stages.GetByID(candidate.JobPostingID, req.StageID)
		if err != nil {
			return nil, err
		}
		if stage == nil {
			return nil, errors.New("stage not found")
		}
		stageID = &stage.ID
		stageName = stage.Name
	} else if candidate.CurrentStage != nil {
		stageID = candidate.CurrentStageID
		stageName = candidate.CurrentStage.Name
	}

	items, generatedBy := i.generateItems(ctx, candidate, stageName, count)

	recs := make([]dbmodels.GeneratedQuestion, 0, len(items))
	for _, item := range items {
		recs = append(recs, dbmodels.GeneratedQuestion{
			CandidateID:      candidateID,
			SelectionStageID: stageID,
			QuestionText:     item.Question,
			Purpose:          item.Purpose,
			Category:         models.QuestionCategory(item.Category),
			GeneratedBy:      generatedBy,
			IsActive:         true,
		})
	}
	if err := i.store.CreateBatch(recs); err != nil {
		return nil, errors.Wrap(err, "generated questions not persisted")
	}

	list = make([]questionapimodels.QuestionView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, questionapimodels.Convert(rec))
	}
	return list, nil
}

// generateItems asks the backend for questions and falls back to the bank on
// any failure.
func (i impl) generateItems(ctx context.Context, candidate *dbmodels.Candidate, stageName string, count int) ([]questionItem, string) {
	logger := log.WithField("candidate_id", candidate.ID).WithField("stage", stageName)

	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	response, err := i.backend.GenerateStructured(ctx, questionSystemPrompt, i.userPrompt(candidate, stageName, count), gptmodels.QuestionOptions())
	if err != nil {
		logger.WithError(err).Warn("question generation failed, using fallback bank")
		return fallbackQuestions(count), "fallback"
	}

	var items []questionItem
	if err := json.Unmarshal([]byte(gpthandler.CleanJSONBlock(response)), &items); err != nil {
		logger.WithError(err).Warn("question generation output not parseable, using fallback bank")
		return fallbackQuestions(count), "fallback"
	}
	if len(items) == 0 {
		logger.Warn("question generation returned nothing, using fallback bank")
		return fallbackQuestions(count), "fallback"
	}
	return items, "ai"
}

func (i impl) ListByCandidate(candidateID string, stageID *string) (list []questionapimodels.QuestionView, err error) {
	recs, err := i.store.ListByCandidate(candidateID, stageID)
	if err != nil {
		return nil, err
	}
	list = make([]questionapimodels.QuestionView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, questionapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) Delete(candidateID, id string) error {
	return i.store.Delete(candidateID, id)
}

const questionSystemPrompt = "You are a skilled interviewer. Generate interview questions and output only JSON, no explanatory text."

func (i impl) userPrompt(candidate *dbmodels.Candidate, stageName string, count int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `Generate %d interview questions for the stage %q.

# Candidate
Name: %s
Position: %s
Stage: %s
`, count, stageName, candidate.Name, i.know.JobTitle, stageName)

	if candidate.ResumeText != "" {
		resume := []rune(candidate.ResumeText)
		if len(resume) > resumePromptLimit {
			resume = resume[:resumePromptLimit]
		}
		fmt.Fprintf(&sb, "\n# Resume\n%s\n", string(resume))
	}

	if latest, err := i.evaluations.Latest(candidate.ID); err == nil && latest != nil {
		fmt.Fprintf(&sb, "\n# Evaluation so far\nStrengths: %s\nConcerns: %s\n",
			joinOrNone(latest.Strengths), joinOrNone(latest.Concerns))
	}

	fmt.Fprintf(&sb, `
# Stage guidance
%s

# Output format
Output a JSON array of exactly %d items:
[
  {
    "question": "the question",
    "purpose": "what this question verifies",
    "category": "technical_skill/experience/cultural_fit/growth_potential/motivation/values/communication/problem_solving"
  }
]

Rules:
- make each question concrete enough for a detailed answer
- include questions grounded in the resume content
- prefer open-ended questions, avoid yes/no questions
- make questions easy for the interviewer to probe further
- never ask illegal questions (age, gender, family situation)
`, stageGuidance(stageName), count)

	return sb.String()
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

// stageGuidance picks question themes by stage name, first match wins.
func stageGuidance(stageName string) string {
	name := strings.ToLower(stageName)
	rules := []struct {
		keywords []string
		guidance string
	}{
		{
			keywords: []string{"document", "screening"},
			guidance: `- questions that dig into the resume and work history
- details of the career path
- hands-on experience behind the listed skills
- reason for changing jobs, motivation for applying`,
		},
		{
			keywords: []string{"first", "1st"},
			guidance: `- deep dives into technical skills
- concrete project experience
- problem-solving ability
- teamwork experience
- basic values`,
		},
		{
			keywords: []string{"second", "2nd"},
			guidance: `- leadership experience
- handling of difficult situations
- career vision
- fit with the company culture
- deeper technical questions`,
		},
		{
			keywords: []string{"final"},
			guidance: `- long-term career plans
- willingness to contribute to the company
- conditions (salary, location)
- decision readiness
- ambitions after joining`,
		},
	}
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.guidance
			}
		}
	}
	return `- questions that verify experience and skills
- fit with the company culture
- motivation and drive
- career plans`
}
