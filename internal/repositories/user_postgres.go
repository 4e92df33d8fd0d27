package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ai-mock-interview/internal/common"
	"alfredoptarigan/ai-mock-interview/internal/models"
)

type userRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Purpose      string    `gorm:"type:text;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()"`
}

func (userRecord) TableName() string {
	return usersCollection
}

func (u *userRecord) toModel() *models.User {
	return &models.User{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		Purpose:      u.Purpose,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

type postgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository expects a *gorm.DB opened with TranslateError so
// unique violations surface as gorm.ErrDuplicatedKey.
func NewPostgresUserRepository(db *gorm.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// EnsureSchema implements UserRepository.
func (r *postgresUserRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&userRecord{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	return nil
}

// Create implements UserRepository.
func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	record := &userRecord{
		ID:           uuid.New(),
		Name:         user.Name,
		Email:        user.Email,
		Purpose:      user.Purpose,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return gormCreateError(err)
	}

	user.ID = record.ID.String()
	return nil
}

// FindByEmail implements UserRepository.
func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(ctx, "email = ?", email)
}

// FindByID implements UserRepository.
func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	return r.first(ctx, "id = ?", uid)
}

func (r *postgresUserRepository) first(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var record userRecord
	if err := r.db.WithContext(ctx).Where(query, arg).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return record.toModel(), nil
}

func gormCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrEmailAlreadyRegistered
	}
	return fmt.Errorf("failed to create user: %w", err)
}
