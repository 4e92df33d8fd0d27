package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"alfredoptarigan/ai-mock-interview/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildInterviewQuestionsPrompt creates prompt for interview question generation
func (pb *PromptBuilder) BuildInterviewQuestionsPrompt(interviewType models.InterviewType, jobDescription string, difficulty int) string {
	jobSection := ""
	if strings.TrimSpace(jobDescription) != "" {
		jobSection = fmt.Sprintf("Job Description: %s\n\n", strings.TrimSpace(jobDescription))
	}

	return fmt.Sprintf(`Generate 5 technical interview questions for a %s position.
Difficulty level: %d/5.

%sReturn the response in valid JSON format like this:
{
  "questions": [
    {"id": 1, "text": "question text here"},
    ...
  ]
}

Make sure questions are specific, technical, and appropriate for the role.`,
		interviewType.Label(), difficulty, jobSection)
}

// BuildAnswerEvaluationPrompt creates prompt for scoring one interview answer
func (pb *PromptBuilder) BuildAnswerEvaluationPrompt(interviewType models.InterviewType, question, answer string) string {
	return fmt.Sprintf(`You are an expert interviewer for %s positions.

Question: %s

Candidate's Answer: %s

Evaluate the answer and provide:
1. Overall feedback
2. A score from 1-10
3. 2-3 strength points (what was good)
4. 2-3 areas for improvement

Return the response in valid JSON format like this:
{
  "feedback": "overall feedback text",
  "score": 7,
  "strengthPoints": ["strength 1", "strength 2"],
  "improvementPoints": ["improvement 1", "improvement 2"]
}`,
		interviewType.Label(), question, answer)
}

// BuildTestPrompt creates prompt for a 10 question mock test
func (pb *PromptBuilder) BuildTestPrompt(params models.TestParams) string {
	return fmt.Sprintf(`You are a professional test creator. Generate a mock test with %d questions based on the following parameters:
- Purpose: %s
- Subject: %s
- Difficulty: %s
- Test Type: %s
- Time Limit: %d minutes

The test should include a mix of multiple-choice and open-ended questions appropriate for the subject and difficulty level.
For multiple-choice questions, provide 4 options with one correct answer.

Return the questions in JSON format like this:
`+"```json"+`
[
  {
    "id": 1,
    "question": "What is the capital of France?",
    "options": ["London", "Paris", "Berlin", "Madrid"],
    "correctAnswer": "Paris"
  },
  {
    "id": 2,
    "question": "Explain the concept of gravity.",
    "correctAnswer": "Gravity is a natural phenomenon by which all things with mass are brought toward one another."
  }
]
`+"```"+`

Be sure to format your response as valid JSON surrounded by `+"```json and ```"+` markers.`,
		MaxTestQuestions, params.Purpose, params.Subject, params.Difficulty, params.TestType, params.TimeLimit)
}

// BuildTestFeedbackPrompt creates prompt for the narrative feedback on a submitted test
func (pb *PromptBuilder) BuildTestFeedbackPrompt(params models.TestParams, correct, total int, analysis []models.QuestionAnalysis) string {
	transcript, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		transcript = []byte("[]")
	}

	return fmt.Sprintf(`Provide detailed feedback for a mock test with the following parameters:
- Subject: %s
- Difficulty: %s
- Test Type: %s

The user scored %d out of %d.
Here are the questions and answers:

%s

Provide:
1. An overall assessment of performance
2. Areas of strength
3. Areas needing improvement
4. Study recommendations
5. Detailed explanations for any incorrect answers`,
		params.Subject, params.Difficulty, params.TestType, correct, total, transcript)
}
