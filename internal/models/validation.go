package models

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"alfredoptarigan/ai-mock-interview/internal/common"
)

const (
	MinPasswordLength = 8
	// bcrypt rejects longer inputs.
	MaxPasswordLength = 72
	maxNameLength     = 100
)

func (r *SignupRequest) Validate() error {
	if err := requireLength("name", strings.TrimSpace(r.Name), 1, maxNameLength); err != nil {
		return err
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if err := requireLength("purpose", r.Purpose, 1, maxNameLength); err != nil {
		return err
	}
	if len(r.Password) < MinPasswordLength || len(r.Password) > MaxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters",
			common.ErrValidation, MinPasswordLength, MaxPasswordLength)
	}
	return nil
}

func (r *LoginRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	return nil
}

func (p *TestParams) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"purpose", p.Purpose},
		{"subject", p.Subject},
		{"difficulty", p.Difficulty},
		{"testType", p.TestType},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, f.name)
		}
	}
	if p.TimeLimit <= 0 {
		return fmt.Errorf("%w: timeLimit must be a positive number of minutes", common.ErrValidation)
	}
	return nil
}

func (s *AnswerSubmission) Validate() error {
	if len(s.Questions) == 0 {
		return fmt.Errorf("%w: questions must not be empty", common.ErrValidation)
	}
	return nil
}

func (r *InterviewRequest) Validate() error {
	if !r.InterviewType.Valid() {
		return fmt.Errorf("%w: unknown interviewType %q", common.ErrValidation, r.InterviewType)
	}
	if level := r.Difficulty(); level < 1 || level > 5 {
		return fmt.Errorf("%w: difficultyLevel must be between 1 and 5", common.ErrValidation)
	}
	return nil
}

func (r *FeedbackRequest) Validate() error {
	if !r.InterviewType.Valid() {
		return fmt.Errorf("%w: unknown interviewType %q", common.ErrValidation, r.InterviewType)
	}
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("%w: question is required", common.ErrValidation)
	}
	if strings.TrimSpace(r.Answer) == "" {
		return fmt.Errorf("%w: answer is required", common.ErrValidation)
	}
	return nil
}

func requireLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return fmt.Errorf("%w: %s must be between %d and %d characters", common.ErrValidation, field, min, max)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	return nil
}
