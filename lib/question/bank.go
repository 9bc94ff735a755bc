package question

import (
	"recruit-flow-backend/models"
)

type questionItem struct {
	Question string `json:"question"`
	Purpose  string `json:"purpose"`
	Category string `json:"category"`
}

// fallbackBank covers any stage when generation is unavailable. Requests for
// more than ten questions cycle through the bank again.
var fallbackBank = []questionItem{
	{
		Question: "Tell me about your work experience so far.",
		Purpose:  "Confirm the work history",
		Category: string(models.QuestionCategoryExperience),
	},
	{
		Question: "Which project or achievement are you most proud of, and why?",
		Purpose:  "Confirm track record and self-awareness",
		Category: string(models.QuestionCategoryExperience),
	},
	{
		Question: "Why did you apply to our company?",
		Purpose:  "Confirm the motivation for applying",
		Category: string(models.QuestionCategoryMotivation),
	},
	{
		Question: "What do you value most when working in a team?",
		Purpose:  "Confirm teamwork ability",
		Category: string(models.QuestionCategoryCommunication),
	},
	{
		Question: "How do you deal with difficult situations? Please give a concrete example.",
		Purpose:  "Confirm problem-solving ability",
		Category: string(models.QuestionCategoryProblemSolving),
	},
	{
		Question: "Where do you want your career to be in five years?",
		Purpose:  "Confirm the career vision",
		Category: string(models.QuestionCategoryGrowth),
	},
	{
		Question: "How do you go about learning new technologies and skills?",
		Purpose:  "Confirm the appetite for learning",
		Category: string(models.QuestionCategoryGrowth),
	},
	{
		Question: "What values matter most to you at work?",
		Purpose:  "Confirm personal values",
		Category: string(models.QuestionCategoryValues),
	},
	{
		Question: "How do you manage stress?",
		Purpose:  "Confirm stress tolerance",
		Category: string(models.QuestionCategoryValues),
	},
	{
		Question: "How do you respond when you receive critical feedback?",
		Purpose:  "Confirm the growth mindset",
		Category: string(models.QuestionCategoryGrowth),
	},
}

// fallbackQuestions returns count questions from the bank, repeating from the
// start when count exceeds the bank size.
func fallbackQuestions(count int) []questionItem {
	items := make([]questionItem, 0, count)
	for idx := 0; idx < count; idx++ {
		items = append(items, fallbackBank[idx%len(fallbackBank)])
	}
	return items
}
