package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	evaluationapimodels "recruit-flow-backend/models/api/evaluation"
)

// GenerateEvaluationReport renders a screening evaluation as a printable PDF.
func GenerateEvaluationReport(result evaluationapimodels.StructuredEvaluation) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateEvaluationReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "Document Screening Evaluation", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	writeMetaLine(pdf, "Candidate", result.CandidateName)
	writeMetaLine(pdf, "Evaluated at", result.EvaluationDate)
	writeMetaLine(pdf, "Position", result.Position)
	writeMetaLine(pdf, "Overall score", fmt.Sprintf("%.1f/10", result.OverallScore))
	writeMetaLine(pdf, "Recommendation", result.Recommendation)
	pdf.Ln(4)

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
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s  (%.1f/%.0f)", section.name, section.data.Score, maxScore), "B", 1, "", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		if section.data.Summary != "" {
			pdf.MultiCell(0, 5, section.data.Summary, "", "", false)
		}
		for _, evidence := range section.data.Evidence {
			pdf.MultiCell(0, 5, "- "+evidence, "", "", false)
		}
		pdf.Ln(3)
	}

	writeList(pdf, "Strengths", result.Strengths)
	writeList(pdf, "Concerns", result.Concerns)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Next steps", "B", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if result.NextSteps.ProceedToInterview {
		pdf.MultiCell(0, 5, "Proceed to interview: recommended", "", "", false)
	} else {
		pdf.MultiCell(0, 5, "Proceed to interview: not recommended", "", "", false)
	}
	for _, area := range result.NextSteps.InterviewFocusAreas {
		pdf.MultiCell(0, 5, "Focus: "+area, "", "", false)
	}
	for _, question := range result.NextSteps.QuestionsToClarify {
		pdf.MultiCell(0, 5, "Clarify: "+question, "", "", false)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeMetaLine(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 6, label+":", "", 0, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, value, "", 1, "", false, 0, "")
}

func writeList(pdf *fpdf.Fpdf, title string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.MultiCell(0, 5, "- "+item, "", "", false)
	}
	pdf.Ln(3)
}
