package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/ai-mock-interview/internal/common"
	"alfredoptarigan/ai-mock-interview/internal/models"
)

const (
	testGenerationTemperature = 0.7
	testFeedbackTemperature   = 0.5
)

type TestService interface {
	GenerateTest(ctx context.Context, params models.TestParams) ([]models.Question, error)
	SubmitAnswers(ctx context.Context, submission models.AnswerSubmission) (*models.SubmissionResult, error)
}

type testService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewTestService(geminiService GeminiService) TestService {
	return &testService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateTest implements TestService.
func (s *testService) GenerateTest(ctx context.Context, params models.TestParams) ([]models.Question, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	prompt := s.promptBuilder.BuildTestPrompt(params)
	log.Printf("📝 Test generation prompt length: %d characters", len(prompt))

	response, err := s.geminiService.GenerateText(ctx, prompt, testGenerationTemperature)
	if err != nil {
		return nil, wrapModelError("failed to generate test", err)
	}
	if response == "" {
		return nil, fmt.Errorf("failed to generate questions: %w", common.ErrEmptyResponse)
	}

	log.Printf("✅ Test generation response received: %d characters", len(response))

	questions, err := ParseTestQuestions(response)
	if err != nil {
		log.Printf("❌ Failed to parse generated test: %v", err)
		return nil, err
	}

	return questions, nil
}

// SubmitAnswers implements TestService.
func (s *testService) SubmitAnswers(ctx context.Context, submission models.AnswerSubmission) (*models.SubmissionResult, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	summary := ScoreAnswers(submission.Questions, submission.Answers)

	prompt := s.promptBuilder.BuildTestFeedbackPrompt(
		submission.TestParams,
		summary.CorrectAnswers,
		len(submission.Questions),
		summary.Analysis,
	)

	feedback, err := s.geminiService.GenerateText(ctx, prompt, testFeedbackTemperature)
	if err != nil {
		return nil, wrapModelError("failed to generate feedback", err)
	}
	if feedback == "" {
		return nil, fmt.Errorf("failed to generate feedback: %w", common.ErrEmptyResponse)
	}

	return &models.SubmissionResult{
		Score:            summary.Score,
		CorrectAnswers:   summary.CorrectAnswers,
		IncorrectAnswers: summary.IncorrectAnswers,
		Feedback:         feedback,
		QuestionAnalysis: summary.Analysis,
	}, nil
}
