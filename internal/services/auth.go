package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"alfredoptarigan/ai-mock-interview/internal/common"
	"alfredoptarigan/ai-mock-interview/internal/models"
	"alfredoptarigan/ai-mock-interview/internal/repositories"
)

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context, token string) (*models.UserResponse, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	tokens     *TokenIssuer
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *TokenIssuer,
	bcryptCost int,
	now func() time.Time,
) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		now:        now,
	}
}

// Signup implements AuthService.
func (s *authService) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, common.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Purpose:      req.Purpose,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	// The store's unique index still catches a concurrent signup that slipped
	// past the lookup above.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	log.Printf("👤 User %s registered\n", user.ID)

	return &models.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    user.Response(),
	}, nil
}

// Login implements AuthService.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, email)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user.Response(),
	}, nil
}

// CurrentUser implements AuthService.
func (s *authService) CurrentUser(ctx context.Context, token string) (*models.UserResponse, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	return user.Response(), nil
}
