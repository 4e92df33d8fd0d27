package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"alfredoptarigan/ai-mock-interview/internal/common"
	"alfredoptarigan/ai-mock-interview/internal/models"
)

const (
	MaxTestQuestions = 10
	// placeholder for questions the model returned without an answer
	defaultCorrectAnswer = "Sample answer"
)

var fencedBlockPattern = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)\\s*```")

// errNoJSON means the output holds no JSON candidate at all, as opposed to a
// candidate that is broken.
var errNoJSON = errors.New("no JSON found in model output")

// ExtractJSONObject pulls the JSON object out of free-form model output. It
// prefers the first fenced code block, falls back to the raw text, and trims
// everything outside the outermost braces.
func ExtractJSONObject(text string) (string, error) {
	return extractJSON(text, '{', '}')
}

// ExtractJSONArray is ExtractJSONObject for a top-level array.
func ExtractJSONArray(text string) (string, error) {
	return extractJSON(text, '[', ']')
}

func extractJSON(text string, open, close byte) (string, error) {
	candidate := text
	if match := fencedBlockPattern.FindStringSubmatch(text); match != nil {
		candidate = match[1]
	}

	start := strings.IndexByte(candidate, open)
	end := strings.LastIndexByte(candidate, close)
	if start == -1 || end <= start {
		return "", fmt.Errorf("%w: %w (expected %c...%c)", common.ErrGeneration, errNoJSON, open, close)
	}

	candidate = candidate[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", fmt.Errorf("%w: model output is not valid JSON", common.ErrGeneration)
	}

	return candidate, nil
}

func parseJSONObject(response string, target interface{}) error {
	jsonStr, err := ExtractJSONObject(response)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("%w: failed to unmarshal JSON: %w", common.ErrGeneration, err)
	}
	return nil
}

// ParseTestQuestions turns model output into test questions. A fenced block
// must hold a valid JSON array. Output with no JSON, or unfenced text whose
// brackets are not valid JSON, goes through the line-convention fallback
// parser. The result holds at most MaxTestQuestions entries with ids and
// answers backfilled.
func ParseTestQuestions(response string) ([]models.Question, error) {
	jsonStr, err := ExtractJSONArray(response)

	var questions []models.Question
	switch {
	case err == nil:
		if err := json.Unmarshal([]byte(jsonStr), &questions); err != nil {
			return nil, fmt.Errorf("%w: failed to decode questions: %w", common.ErrGeneration, err)
		}
	case errors.Is(err, errNoJSON), !fencedBlockPattern.MatchString(response):
		questions = ParseQuestionBlocks(response)
	default:
		return nil, err
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: failed to parse any questions from the response", common.ErrGeneration)
	}

	return normalizeQuestions(questions), nil
}

// ParseQuestionBlocks is the legacy plain-text parser. Blocks are separated
// by blank lines; the first line is the question (an optional "Q:" is
// dropped), lines starting with "-" or "*" are options, and an "Answer:" or
// "Correct Answer:" line holds the answer. Code fence lines are ignored.
func ParseQuestionBlocks(text string) []models.Question {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var questions []models.Question
	for _, block := range strings.Split(text, "\n\n") {
		lines := contentLines(block)
		if len(lines) < 2 {
			continue
		}

		question := models.Question{
			Question: strings.TrimSpace(strings.ReplaceAll(lines[0], "Q:", "")),
		}

		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "-"), strings.HasPrefix(line, "*"):
				question.Options = append(question.Options, models.FlexString(strings.TrimSpace(line[1:])))
			case strings.HasPrefix(line, "Answer:"), strings.HasPrefix(line, "Correct Answer:"):
				_, answer, _ := strings.Cut(line, ":")
				question.CorrectAnswer = models.FlexString(strings.TrimSpace(answer))
			}
		}

		questions = append(questions, question)
		if len(questions) == MaxTestQuestions {
			break
		}
	}

	return questions
}

func contentLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func normalizeQuestions(questions []models.Question) []models.Question {
	if len(questions) > MaxTestQuestions {
		questions = questions[:MaxTestQuestions]
	}

	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = models.QuestionID(strconv.Itoa(i + 1))
		}
		if questions[i].CorrectAnswer == "" {
			questions[i].CorrectAnswer = defaultCorrectAnswer
		}
	}

	return questions
}
