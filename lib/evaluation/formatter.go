package evaluation

import (
	"fmt"
	"strings"

	evaluationapimodels "recruit-flow-backend/models/api/evaluation"
)

const notRecorded = "not recorded"

var recommendationLabels = map[string]string{
	"strongly_recommend":    "Strongly recommend",
	"recommend":             "Recommend",
	"conditional_recommend": "Conditional recommend",
	"reject":                "Reject",
}

// Format renders an evaluation as readable text. It is total: any field may
// be empty and the output degrades to placeholders, never an error.
func Format(result evaluationapimodels.StructuredEvaluation) string {
	divider := strings.Repeat("=", 60)
	line := strings.Repeat("-", 60)

	var out []string
	out = append(out, divider)
	out = append(out, "Document Screening Evaluation")
	out = append(out, divider)
	out = append(out, "Candidate:      "+orPlaceholder(result.CandidateName))
	out = append(out, "Evaluated at:   "+orPlaceholder(result.EvaluationDate))
	out = append(out, "Position:       "+orPlaceholder(result.Position))
	out = append(out, fmt.Sprintf("Overall score:  %.1f/10", result.OverallScore))
	out = append(out, "Recommendation: "+recommendationLabel(result.Recommendation))
	out = append(out, "")

	sections := []struct {
		name string
		data evaluationapimodels.Section
	}{
		{"Technical skills", result.Sections.TechnicalSkills},
		{"Experience quality", result.Sections.ExperienceQuality},
		{"Cultural fit", result.Sections.CulturalFit},
		{"Growth potential", result.Sections.GrowthPotential},
	}
	for _, section := range sections {
		maxScore := section.data.MaxScore
		if maxScore == 0 {
			maxScore = 10
		}
		out = append(out, "")
		out = append(out, section.name)
		out = append(out, line)
		out = append(out, fmt.Sprintf("Score:   %.1f/%.0f", section.data.Score, maxScore))
		out = append(out, "Summary: "+orPlaceholder(section.data.Summary))
		out = append(out, "")
	}

	out = append(out, "")
	out = append(out, "Next steps")
	out = append(out, line)
	if result.NextSteps.ProceedToInterview {
		out = append(out, "Proceed to interview: recommended")
	} else {
		out = append(out, "Proceed to interview: not recommended")
	}
	if len(result.NextSteps.InterviewFocusAreas) > 0 {
		out = append(out, "")
		out = append(out, "Interview focus areas:")
		for idx, area := range result.NextSteps.InterviewFocusAreas {
			out = append(out, fmt.Sprintf("  %d. %s", idx+1, area))
		}
	}
	if len(result.NextSteps.QuestionsToClarify) > 0 {
		out = append(out, "")
		out = append(out, "Questions to clarify:")
		for idx, question := range result.NextSteps.QuestionsToClarify {
			out = append(out, fmt.Sprintf("  %d. %s", idx+1, question))
		}
	}

	out = append(out, "")
	out = append(out, divider)
	return strings.Join(out, "\n")
}

func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return notRecorded
	}
	return value
}

func recommendationLabel(value string) string {
	if label, ok := recommendationLabels[value]; ok {
		return label
	}
	return orPlaceholder(value)
}
