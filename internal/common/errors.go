package common

import "errors"

var (
	// request errors
	ErrValidation = errors.New("validation error")

	// auth errors
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid token")
	ErrUserNotFound           = errors.New("user not found")

	// model errors
	ErrGeneration    = errors.New("generation failed")
	ErrEmptyResponse = errors.New("empty response from model")
)
