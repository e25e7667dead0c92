package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloglist/auth"
	"bloglist/models"
	"bloglist/repositories"
)

// UserService handles registration and user listing.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates a user with a bcrypt-hashed password. Uniqueness of the
// username is enforced by the store's unique index, not an in-process check.
func (s *UserService) Register(ctx context.Context, username, name, password string) (*models.User, error) {
	if username == "" {
		return nil, validationErr("`username` is required")
	}
	if password == "" {
		return nil, validationErr("`password` is required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Blogs:        []primitive.ObjectID{},
	}
	created, err := s.users.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return created, nil
}

// List returns all users with the ids of the blogs they own.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
