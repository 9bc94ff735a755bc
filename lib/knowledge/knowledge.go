package knowledge

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Knowledge holds the job requirements and scoring template documents.
// Both are opaque to the pipeline and passed through to the generation
// backend; only job_title is read out for report metadata. Loaded once at
// pipeline-assembly time and passed into the evaluation engine by reference.
type Knowledge struct {
	JobRequirements    json.RawMessage
	EvaluationTemplate json.RawMessage
	JobTitle           string
}

func Load(jobRequirementsPath, evaluationTemplatePath string) (*Knowledge, error) {
	requirements, err := readJSON(jobRequirementsPath)
	if err != nil {
		return nil, errors.Wrap(err, "job requirements document not loadable")
	}
	template, err := readJSON(evaluationTemplatePath)
	if err != nil {
		return nil, errors.Wrap(err, "evaluation template document not loadable")
	}

	k := &Knowledge{
		JobRequirements:    requirements,
		EvaluationTemplate: template,
		JobTitle:           "unspecified",
	}
	var meta struct {
		JobTitle string `json:"job_title"`
	}
	if err := json.Unmarshal(requirements, &meta); err == nil && meta.JobTitle != "" {
		k.JobTitle = meta.JobTitle
	}
	return k, nil
}

func readJSON(path string) (json.RawMessage, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !json.Valid(content) {
		return nil, errors.Errorf("file %v is not valid json", path)
	}
	return content, nil
}
