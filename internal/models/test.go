package models

// TestParams describes the mock test a user asked for.
type TestParams struct {
	Purpose    string  `json:"purpose"`
	Subject    string  `json:"subject"`
	Difficulty string  `json:"difficulty"`
	TestType   string  `json:"testType"`
	TimeLimit  FlexInt `json:"timeLimit"`
}

// Question is a single generated test question. Options is empty for
// open-ended questions.
type Question struct {
	ID            QuestionID   `json:"id"`
	Question      string       `json:"question"`
	Options       []FlexString `json:"options,omitempty"`
	CorrectAnswer FlexString   `json:"correctAnswer"`
}

type TestResponse struct {
	Questions []Question `json:"questions"`
}

// AnswerSubmission maps question ids (in string form) to the user's answers.
type AnswerSubmission struct {
	TestParams TestParams            `json:"testParams"`
	Questions  []Question            `json:"questions"`
	Answers    map[string]FlexString `json:"answers"`
}

type QuestionAnalysis struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
}

type SubmissionResult struct {
	Score            int                `json:"score"`
	CorrectAnswers   int                `json:"correctAnswers"`
	IncorrectAnswers int                `json:"incorrectAnswers"`
	Feedback         string             `json:"feedback"`
	QuestionAnalysis []QuestionAnalysis `json:"questionAnalysis"`
}
