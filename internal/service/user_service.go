package service

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/domain"
)

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	Insert(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates an account with a hashed password and issues a token.
// The unique index on email backs up the existence check under races.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, "", domain.Invalid("name", "name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", domain.Invalid("email", "a valid email is required")
	}
	if password == "" {
		return nil, "", domain.Invalid("password", "password is required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := GenerateJWT(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUnauthorized
		}
		return nil, "", err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return nil, "", domain.ErrUnauthorized
	}

	token, err := GenerateJWT(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
