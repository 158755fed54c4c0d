package test

import (
	"context"
	"errors"
	"strings"

	"github.com/polkiloo/mmtc/internal/domain/model"
	pkgAuth "github.com/polkiloo/mmtc/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides. By default a
// token is "token:<subject>:<email>".
type StrategyStub struct {
	IssueFn func(string, string) (string, error)
	ParseFn func(string) (*model.Claims, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(subjectID, email string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subjectID, email)
	}
	return "token:" + subjectID + ":" + email, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (*model.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 || parts[0] != "token" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return &model.Claims{SubjectID: parts[1], Email: parts[2]}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenVerifierStub implements middleware verification contract.
type TokenVerifierStub struct {
	Claims   *model.Claims
	Err      error
	VerifyFn func(string) (*model.Claims, error)
}

// Verify either delegates to override or returns predefined result.
func (s TokenVerifierStub) Verify(header string) (*model.Claims, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(header)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Claims, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	VerifyFn       func(string) (*model.Claims, error)
}

// Register returns a user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return &model.User{ID: "user-1", Email: email}, nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// Verify accepts any header by default.
func (s AuthFacadeStub) Verify(header string) (*model.Claims, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(header)
	}
	return &model.Claims{SubjectID: "user-1", Email: "user@example.com"}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
