package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/mmtc/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies bearer tokens.
type Strategy interface {
	IssueToken(subjectID, email string) (string, error)
	ParseToken(token string) (*model.Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
