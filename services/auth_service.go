package services

import (
	"context"
	"errors"

	"bloglist/auth"
	"bloglist/models"
	"bloglist/repositories"
)

// AuthService exchanges valid credentials for a signed token.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login checks the credentials and issues a token bound to the user.
// An unknown username and a wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID.Hex(), user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
