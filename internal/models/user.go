package models

import "time"

// User is a registered account. ID is assigned by the store.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Purpose      string
	CreatedAt    time.Time
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Purpose  string `json:"purpose"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the client-facing view of a user; it never carries the hash.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
}

func (u *User) Response() *UserResponse {
	return &UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Purpose: u.Purpose,
	}
}
