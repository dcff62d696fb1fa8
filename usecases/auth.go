package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rental-api/entities"
	"rental-api/repositories"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
	Validate(token string) (string, error)
}

// Session is what register and login hand back to the client.
type Session struct {
	Token string           `json:"token"`
	User  entities.Profile `json:"user"`
}

type AuthUseCase struct {
	users  repositories.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthUseCase(users repositories.UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a user unless the email is already taken.
func (uc *AuthUseCase) Register(ctx context.Context, email, password, name string) (*Session, error) {
	if email == "" || password == "" || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("email, password and name are required: %w", entities.ErrValidation)
	}

	_, err := uc.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("email already registered: %w", entities.ErrConflict)
	case !errors.Is(err, entities.ErrNotFound):
		return nil, err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &entities.User{Email: email, Name: name, PasswordHash: hash}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.session(user)
}

// Login fails with the same error whether the email is unknown or the
// password is wrong.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if errors.Is(err, entities.ErrNotFound) {
		return nil, fmt.Errorf("invalid credentials: %w", entities.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if !uc.hasher.Verify(user.PasswordHash, password) {
		return nil, fmt.Errorf("invalid credentials: %w", entities.ErrUnauthorized)
	}
	return uc.session(user)
}

// Authenticate returns the user id carried by token. The user is not looked up.
func (uc *AuthUseCase) Authenticate(token string) (string, error) {
	return uc.tokens.Validate(token)
}

func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*entities.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func (uc *AuthUseCase) session(user *entities.User) (*Session, error) {
	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user.Profile()}, nil
}
