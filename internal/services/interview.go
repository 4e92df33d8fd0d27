package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"alfredoptarigan/ai-mock-interview/internal/common"
	"alfredoptarigan/ai-mock-interview/internal/models"
)

const (
	questionGenerationTemperature = 0.7
	answerEvaluationTemperature   = 0.3
)

type InterviewService interface {
	GenerateQuestions(ctx context.Context, req models.InterviewRequest) (*models.InterviewResponse, error)
	EvaluateAnswer(ctx context.Context, req models.FeedbackRequest) (*models.FeedbackResponse, error)
}

type interviewService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewInterviewService(geminiService GeminiService) InterviewService {
	return &interviewService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateQuestions implements InterviewService.
func (s *interviewService) GenerateQuestions(ctx context.Context, req models.InterviewRequest) (*models.InterviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := s.promptBuilder.BuildInterviewQuestionsPrompt(req.InterviewType, req.JobDescription, req.Difficulty())
	log.Printf("📝 Interview questions prompt length: %d characters", len(prompt))

	response, err := s.geminiService.GenerateText(ctx, prompt, questionGenerationTemperature)
	if err != nil {
		return nil, wrapModelError("error generating questions", err)
	}
	if response == "" {
		return nil, fmt.Errorf("error generating questions: %w", common.ErrEmptyResponse)
	}

	var result models.InterviewResponse
	if err := parseJSONObject(response, &result); err != nil {
		log.Printf("❌ Failed to parse interview questions: %v", err)
		return nil, fmt.Errorf("error generating questions: %w", err)
	}

	if result.Questions == nil {
		return nil, fmt.Errorf("error generating questions: %w: invalid response format from AI model", common.ErrGeneration)
	}

	return &result, nil
}

var requiredFeedbackFields = []string{"feedback", "score", "strengthPoints", "improvementPoints"}

// EvaluateAnswer implements InterviewService.
func (s *interviewService) EvaluateAnswer(ctx context.Context, req models.FeedbackRequest) (*models.FeedbackResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := s.promptBuilder.BuildAnswerEvaluationPrompt(req.InterviewType, req.Question, req.Answer)

	response, err := s.geminiService.GenerateText(ctx, prompt, answerEvaluationTemperature)
	if err != nil {
		return nil, wrapModelError("error evaluating answer", err)
	}
	if response == "" {
		return nil, fmt.Errorf("error evaluating answer: %w", common.ErrEmptyResponse)
	}

	jsonStr, err := ExtractJSONObject(response)
	if err != nil {
		log.Printf("❌ Failed to parse answer evaluation: %v", err)
		return nil, fmt.Errorf("error evaluating answer: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return nil, fmt.Errorf("error evaluating answer: %w: %w", common.ErrGeneration, err)
	}

	for _, field := range requiredFeedbackFields {
		if _, ok := fields[field]; !ok {
			return nil, fmt.Errorf("error evaluating answer: %w: missing required field in AI response: %s",
				common.ErrGeneration, field)
		}
	}

	// models occasionally return fractional or quoted scores such as 7.5 or "7"
	var raw struct {
		Feedback          models.FlexString `json:"feedback"`
		Score             models.FlexString `json:"score"`
		StrengthPoints    models.FlexList   `json:"strengthPoints"`
		ImprovementPoints models.FlexList   `json:"improvementPoints"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("error evaluating answer: %w: %w", common.ErrGeneration, err)
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(raw.Score.String()), 64)
	if err != nil {
		return nil, fmt.Errorf("error evaluating answer: %w: invalid score %q", common.ErrGeneration, raw.Score)
	}

	return &models.FeedbackResponse{
		Feedback:          raw.Feedback.String(),
		Score:             int(math.Round(score)),
		StrengthPoints:    []string(raw.StrengthPoints),
		ImprovementPoints: []string(raw.ImprovementPoints),
	}, nil
}
