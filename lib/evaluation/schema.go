package evaluation

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// outputSchema is what the generation backend must return. Metadata fields
// (candidate_name, evaluation_date, position) are stamped by the engine after
// parsing and are not required here.
const outputSchema = `{
  "type": "object",
  "required": ["evaluation_format"],
  "properties": {
    "evaluation_format": {
      "type": "object",
      "required": ["overall_score", "recommendation", "sections", "next_steps"],
      "properties": {
        "overall_score": {"type": "number", "minimum": 0, "maximum": 10},
        "recommendation": {
          "type": "string",
          "enum": ["strongly_recommend", "recommend", "conditional_recommend", "reject"]
        },
        "sections": {
          "type": "object",
          "required": ["technical_skills", "experience_quality", "cultural_fit", "growth_potential"],
          "properties": {
            "technical_skills": {"$ref": "#/definitions/section"},
            "experience_quality": {"$ref": "#/definitions/section"},
            "cultural_fit": {"$ref": "#/definitions/section"},
            "growth_potential": {"$ref": "#/definitions/section"}
          }
        },
        "strengths": {"type": "array", "items": {"type": "string"}},
        "concerns": {"type": "array", "items": {"type": "string"}},
        "next_steps": {
          "type": "object",
          "required": ["proceed_to_interview"],
          "properties": {
            "proceed_to_interview": {"type": "boolean"},
            "interview_focus_areas": {"type": "array", "items": {"type": "string"}},
            "questions_to_clarify": {"type": "array", "items": {"type": "string"}}
          }
        }
      }
    }
  },
  "definitions": {
    "section": {
      "type": "object",
      "required": ["score", "max_score", "summary"],
      "properties": {
        "score": {"type": "number", "minimum": 0, "maximum": 10},
        "max_score": {"type": "number"},
        "summary": {"type": "string"},
        "evidence": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`

// validateOutput checks the cleaned backend response against outputSchema.
func validateOutput(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(outputSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.Wrap(err, "evaluation output is not parseable")
	}
	if result.Valid() {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("evaluation output failed validation:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(" " + field + ": " + desc.Description() + ";")
	}
	return errors.New(sb.String())
}
