package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/polkiloo/mmtc/internal/domain/model"
)

const defaultTTL = time.Hour

type tokenClaims struct {
	SubjectID string `json:"subjectId"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// JWTStrategy implements Strategy with HS256-signed JWTs.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken signs claims for the subject with an absolute expiry of now+ttl.
func (s *JWTStrategy) IssueToken(subjectID, email string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		SubjectID: subjectID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken verifies signature and expiry and returns the carried identity.
// Every failure collapses into ErrInvalidToken.
func (s *JWTStrategy) ParseToken(token string) (*model.Claims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &model.Claims{SubjectID: claims.SubjectID, Email: claims.Email}, nil
}

// Name returns the strategy identifier.
func (s *JWTStrategy) Name() string {
	return "jwt"
}
