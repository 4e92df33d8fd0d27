package services

import (
	"strings"

	"alfredoptarigan/ai-mock-interview/internal/models"
)

// ScoreSummary is the deterministic part of a submission result.
type ScoreSummary struct {
	Score            int
	CorrectAnswers   int
	IncorrectAnswers int
	Analysis         []models.QuestionAnalysis
}

// ScoreAnswers grades each question by case-insensitive, whitespace-trimmed
// equality with its expected answer. Answers are looked up by the string form
// of the question id; a missing answer counts as "".
func ScoreAnswers(questions []models.Question, answers map[string]models.FlexString) ScoreSummary {
	summary := ScoreSummary{
		Analysis: make([]models.QuestionAnalysis, 0, len(questions)),
	}

	for _, q := range questions {
		userAnswer := answers[q.ID.String()].String()
		correctAnswer := q.CorrectAnswer.String()
		correct := normalizeAnswer(userAnswer) == normalizeAnswer(correctAnswer)

		if correct {
			summary.CorrectAnswers++
		}

		summary.Analysis = append(summary.Analysis, models.QuestionAnalysis{
			Question:      q.Question,
			UserAnswer:    userAnswer,
			CorrectAnswer: correctAnswer,
			Correct:       correct,
		})
	}

	total := len(questions)
	summary.IncorrectAnswers = total - summary.CorrectAnswers
	if total > 0 {
		summary.Score = summary.CorrectAnswers * 100 / total
	}

	return summary
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
