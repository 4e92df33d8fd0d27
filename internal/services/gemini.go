package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/ai-mock-interview/internal/common"
)

// GeminiService is the prompt-in, text-out view of the generative model.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client          *genai.Client
	modelName       string
	maxOutputTokens int32
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, maxOutputTokens int) (GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:          client,
		modelName:       modelName,
		maxOutputTokens: int32(maxOutputTokens),
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("%w: %w", common.ErrGeneration, err)
	}

	if resp == nil {
		return "", common.ErrEmptyResponse
	}

	text := resp.Text()
	if text != "" {
		return text, nil
	}

	// Text() only reads the first candidate; look at the rest before giving up.
	var textParts []string
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				textParts = append(textParts, part.Text)
			}
		}
	}

	if len(textParts) == 0 {
		log.Println("❌ No text content in Gemini response")
		return "", common.ErrEmptyResponse
	}

	return strings.Join(textParts, "\n"), nil
}

// wrapModelError tags failures of injected model clients as generation
// errors unless they already carry a model error kind.
func wrapModelError(msg string, err error) error {
	if errors.Is(err, common.ErrGeneration) || errors.Is(err, common.ErrEmptyResponse) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, common.ErrGeneration, err)
}
