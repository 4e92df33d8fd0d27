package models

import "strings"

type InterviewType string

const (
	InterviewSoftwareEngineer   InterviewType = "software_engineer"
	InterviewDataScientist      InterviewType = "data_scientist"
	InterviewFrontendDeveloper  InterviewType = "frontend_developer"
	InterviewBackendDeveloper   InterviewType = "backend_developer"
	InterviewFullstackDeveloper InterviewType = "fullstack_developer"
)

const DefaultDifficultyLevel = 3

func (t InterviewType) Valid() bool {
	switch t {
	case InterviewSoftwareEngineer,
		InterviewDataScientist,
		InterviewFrontendDeveloper,
		InterviewBackendDeveloper,
		InterviewFullstackDeveloper:
		return true
	}
	return false
}

// Label is the human readable role name used in prompts.
func (t InterviewType) Label() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

type InterviewRequest struct {
	InterviewType   InterviewType `json:"interviewType"`
	JobDescription  string        `json:"jobDescription,omitempty"`
	DifficultyLevel *int          `json:"difficultyLevel,omitempty"`
}

// Difficulty returns the requested level or the default of 3.
func (r *InterviewRequest) Difficulty() int {
	if r.DifficultyLevel == nil {
		return DefaultDifficultyLevel
	}
	return *r.DifficultyLevel
}

type InterviewQuestion struct {
	ID   QuestionID `json:"id"`
	Text string     `json:"text"`
}

type InterviewResponse struct {
	Questions []InterviewQuestion `json:"questions"`
}

type FeedbackRequest struct {
	InterviewType InterviewType `json:"interviewType"`
	Question      string        `json:"question"`
	Answer        string        `json:"answer"`
}

type FeedbackResponse struct {
	Feedback          string   `json:"feedback"`
	Score             int      `json:"score"`
	StrengthPoints    []string `json:"strengthPoints"`
	ImprovementPoints []string `json:"improvementPoints"`
}
