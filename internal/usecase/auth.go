package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
	"github.com/polkiloo/mmtc/internal/domain/repository"
	pkgAuth "github.com/polkiloo/mmtc/internal/pkg/auth"
)

// AuthUseCase handles user signup, login and token verification.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user with a hashed password.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if err := requireCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return u.users.Create(ctx, email, hash)
}

// Authenticate validates credentials and returns a bearer token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if err := requireCredentials(email, password); err != nil {
		return nil, "", err
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Email)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts claims from provided token.
func (u *AuthUseCase) ParseToken(token string) (*model.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// Verify checks an Authorization header value. Missing, malformed, expired and
// badly signed credentials all yield ErrForbidden. No store lookup happens, so
// a token outlives its user until it expires.
func (u *AuthUseCase) Verify(header string) (*model.Claims, error) {
	token, err := pkgAuth.ExtractBearer(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrForbidden, err)
	}
	claims, err := u.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrForbidden, err)
	}
	return claims, nil
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func requireCredentials(email, password string) error {
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return domainErrors.MissingFields(missing...)
	}
	return nil
}
