package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mmtc/internal/domain/model"
	"github.com/polkiloo/mmtc/internal/server/http/dto"
)

// UserContextKey is a gin context key for verified token claims.
const UserContextKey = "user"

// TokenVerifier checks the raw Authorization header value.
type TokenVerifier interface {
	Verify(header string) (*model.Claims, error)
}

// AuthRequired rejects requests without a valid bearer token. Every failure,
// including a missing header, answers 403.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifier.Verify(c.GetHeader("Authorization"))
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden"})
			return
		}

		c.Set(UserContextKey, claims)
		c.Next()
	}
}
