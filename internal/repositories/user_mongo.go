package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"alfredoptarigan/ai-mock-interview/internal/common"
	"alfredoptarigan/ai-mock-interview/internal/models"
)

// CollectionProvider hands out named collections; config.MongoClient
// satisfies it.
type CollectionProvider interface {
	Collection(name string) *mongo.Collection
}

type mongoUser struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	Purpose      string        `bson:"purpose"`
	PasswordHash string        `bson:"password_hash"`
	CreatedAt    time.Time     `bson:"created_at"`
}

type mongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(db CollectionProvider) UserRepository {
	return &mongoUserRepository{users: db.Collection(usersCollection)}
}

// EnsureSchema implements UserRepository.
func (r *mongoUserRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// Create implements UserRepository.
func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	doc := mongoUser{
		ID:           bson.NewObjectID(),
		Name:         user.Name,
		Email:        user.Email,
		Purpose:      user.Purpose,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		return mongoInsertError(err)
	}

	user.ID = doc.ID.Hex()
	return nil
}

// FindByEmail implements UserRepository.
func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByID implements UserRepository.
func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc mongoUser
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &models.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		Purpose:      doc.Purpose,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

// mongoInsertError turns a unique index violation into a signup conflict.
func mongoInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return common.ErrEmailAlreadyRegistered
	}
	return fmt.Errorf("failed to create user: %w", err)
}
