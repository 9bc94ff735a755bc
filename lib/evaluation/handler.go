package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	evaluationstore "recruit-flow-backend/lib/evaluation/store"
	filestorage "recruit-flow-backend/lib/file-storage"
	gpthandler "recruit-flow-backend/lib/gpt"
	postingstore "recruit-flow-backend/lib/job-posting/store"
	"recruit-flow-backend/lib/knowledge"
	pdfextract "recruit-flow-backend/lib/pdf-extract"
	"recruit-flow-backend/lib/smtp"
	"recruit-flow-backend/models"
	evaluationapimodels "recruit-flow-backend/models/api/evaluation"
	gptmodels "recruit-flow-backend/models/api/gpt"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	// Evaluate runs the scoring pipeline on a resume document: extract text,
	// score against the loaded job requirements, validate the structured
	// output and stamp metadata. Malformed backend output is an error, there
	// is no retry and no degraded result.
	Evaluate(ctx context.Context, documentBytes []byte, candidateName string) (result evaluationapimodels.StructuredEvaluation, rawOutput string, err error)
	// EvaluateAndSave evaluates the document for an existing candidate,
	// persists the evaluation, archives the resume file and notifies the
	// posting owner. Storage and notification failures after a successful
	// evaluation are logged, not propagated.
	EvaluateAndSave(ctx context.Context, candidateID string, stageID *string, fileName string, documentBytes []byte) (view evaluationapimodels.EvaluationView, err error)
	GetByID(id string) (view evaluationapimodels.EvaluationView, err error)
	ListByCandidate(candidateID string) (list []evaluationapimodels.EvaluationView, err error)
	// Report renders the stored evaluation as readable text.
	Report(id string) (string, error)
	// ReportData rebuilds the structured result of a stored evaluation.
	ReportData(id string) (result evaluationapimodels.StructuredEvaluation, err error)
}

var Instance Provider

func NewHandler(know *knowledge.Knowledge) {
	Instance = impl{
		extractor:  pdfextract.Instance,
		backend:    gpthandler.Instance,
		know:       know,
		store:      evaluationstore.NewInstance(db.DB),
		candidates: candidatestore.NewInstance(db.DB),
		postings:   postingstore.NewInstance(db.DB),
		files:      filestorage.Instance,
		mail:       smtp.Instance,
		timeout:    time.Duration(config.Conf.AI.RequestTimeout) * time.Second,
		now:        time.Now,
	}
}

type impl struct {
	extractor  pdfextract.Provider
	backend    gpthandler.Provider
	know       *knowledge.Knowledge
	store      evaluationstore.Provider
	candidates candidatestore.Provider
	postings   postingstore.Provider
	files      filestorage.Provider
	mail       smtp.Provider
	timeout    time.Duration
	now        func() time.Time
}

// outputWrapper mirrors the envelope the backend is asked to produce.
type outputWrapper struct {
	EvaluationFormat evaluationapimodels.StructuredEvaluation `json:"evaluation_format"`
}

func (i impl) Evaluate(ctx context.Context, documentBytes []byte, candidateName string) (result evaluationapimodels.StructuredEvaluation, rawOutput string, err error) {
	resumeText, err := i.extractor.Extract(documentBytes)
	if err != nil {
		return result, "", errors.Wrap(err, "resume text extraction failed")
	}

	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	response, err := i.backend.GenerateStructured(ctx, systemPrompt, i.userPrompt(resumeText), gptmodels.ScoringOptions())
	if err != nil {
		return result, "", errors.Wrap(err, "evaluation generation failed")
	}

	rawOutput = gpthandler.CleanJSONBlock(response)
	if err := validateOutput(rawOutput); err != nil {
		return result, "", err
	}
	wrapper := outputWrapper{}
	if err := json.Unmarshal([]byte(rawOutput), &wrapper); err != nil {
		return result, "", errors.Wrap(err, "evaluation output is not valid json")
	}

	result = wrapper.EvaluationFormat
	result.CandidateName = candidateName
	result.EvaluationDate = i.now().Format("2006-01-02 15:04:05")
	result.Position = i.know.JobTitle
	return result, rawOutput, nil
}

func (i impl) EvaluateAndSave(ctx context.Context, candidateID string, stageID *string, fileName string, documentBytes []byte) (view evaluationapimodels.EvaluationView, err error) {
	candidate, err := i.candidates.GetByID(candidateID)
	if err != nil {
		return view, err
	}
	if candidate == nil {
		return view, errors.New("candidate not found")
	}

	result, rawOutput, err := i.Evaluate(ctx, documentBytes, candidate.Name)
	if err != nil {
		return view, err
	}

	rec := dbmodels.Evaluation{
		CandidateID:      candidateID,
		SelectionStageID: stageID,
		Position:         result.Position,
		OverallScore:     result.OverallScore,
		Recommendation:   models.Recommendation(result.Recommendation),
		Strengths:        pq.StringArray(result.Strengths),
		Concerns:         pq.StringArray(result.Concerns),
		RawOutput:        rawOutput,
	}
	if scores, err := json.Marshal(result.Sections); err == nil {
		rec.Scores = string(scores)
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "evaluation not persisted")
	}
	rec.ID = id

	i.archiveResume(ctx, candidate, fileName, documentBytes)
	i.notifyOwner(candidate, result)

	view = evaluationapimodels.Convert(rec)
	view.Report = Format(result)
	return view, nil
}

// archiveResume keeps the original document and caches its key on the
// candidate for later question generation.
func (i impl) archiveResume(ctx context.Context, candidate *dbmodels.Candidate, fileName string, documentBytes []byte) {
	logger := log.WithField("candidate_id", candidate.ID)
	if i.files == nil {
		logger.Warn("resume file not archived, file storage is not available")
		return
	}
	objectKey, err := i.files.UploadResume(ctx, candidate.ID, documentBytes, fileName)
	if err != nil {
		logger.WithError(err).Error("resume file not archived")
		return
	}
	resumeText, err := i.extractor.Extract(documentBytes)
	if err != nil {
		// cannot happen after a successful evaluation, but keep the key
		resumeText = ""
	}
	err = i.candidates.Update(candidate.ID, map[string]interface{}{
		"resume_object_key": objectKey,
		"resume_text":       resumeText,
	})
	if err != nil {
		logger.WithError(err).Error("resume reference not saved on candidate")
	}
}

func (i impl) notifyOwner(candidate *dbmodels.Candidate, result evaluationapimodels.StructuredEvaluation) {
	posting, err := i.postings.GetByID(candidate.JobPostingID)
	if err != nil || posting == nil || posting.OwnerEmail == "" {
		return
	}
	subject := fmt.Sprintf("Evaluation ready: %s (%s)", candidate.Name, candidate.CandidateNumber)
	err = i.mail.SendEMail("noreply@recruit-flow", posting.OwnerEmail, Format(result), subject)
	if err != nil {
		log.WithError(err).WithField("candidate_id", candidate.ID).Error("evaluation notification not sent")
	}
}

func (i impl) GetByID(id string) (view evaluationapimodels.EvaluationView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, errors.New("evaluation not found")
	}
	return evaluationapimodels.Convert(*rec), nil
}

func (i impl) ListByCandidate(candidateID string) (list []evaluationapimodels.EvaluationView, err error) {
	recs, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	list = make([]evaluationapimodels.EvaluationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, evaluationapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) Report(id string) (string, error) {
	result, err := i.ReportData(id)
	if err != nil {
		return "", err
	}
	return Format(result), nil
}

func (i impl) ReportData(id string) (result evaluationapimodels.StructuredEvaluation, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return result, err
	}
	if rec == nil {
		return result, errors.New("evaluation not found")
	}
	wrapper := outputWrapper{}
	if err := json.Unmarshal([]byte(rec.RawOutput), &wrapper); err != nil {
		return result, errors.Wrap(err, "stored evaluation output is not readable")
	}
	result = wrapper.EvaluationFormat
	if candidate, err := i.candidates.GetByID(rec.CandidateID); err == nil && candidate != nil {
		result.CandidateName = candidate.Name
	}
	result.EvaluationDate = rec.CreatedAt.Format("2006-01-02 15:04:05")
	result.Position = rec.Position
	return result, nil
}

const systemPrompt = "You are an experienced recruiter. Analyze the resume below and evaluate it objectively against the job requirements. Output only JSON, no explanatory text."

func (i impl) userPrompt(resumeText string) string {
	return fmt.Sprintf(`# Job requirements
%s

# Evaluation format
Output the evaluation as JSON in exactly this shape:
%s

# Resume
%s

# Scoring guidelines
1. technical_skills: match against required and preferred skills
2. experience_quality: depth of project experience, outcomes, scope of responsibility
3. cultural_fit: alignment with company values, communication style
4. growth_potential: learning attitude, skill trajectory, adaptability

For each section:
- score from 0 to 10, 10 is best
- cite concrete evidence from the resume
- call out concerns explicitly
- suggest points to verify in the next interview

Compute overall_score as a weighted combination of the section scores.
Set recommendation to one of: strongly_recommend, recommend, conditional_recommend, reject.

Output only the JSON document.`,
		string(i.know.JobRequirements),
		string(i.know.EvaluationTemplate),
		resumeText)
}
