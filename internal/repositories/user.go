package repositories

import (
	"context"

	"alfredoptarigan/ai-mock-interview/internal/models"
)

const usersCollection = "users"

// UserRepository persists accounts. Implementations enforce email uniqueness
// at the store and report violations as common.ErrEmailAlreadyRegistered;
// lookups that miss return common.ErrUserNotFound.
type UserRepository interface {
	// EnsureSchema creates the unique email constraint if it is missing.
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}
