package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/server/http/dto"
)

// AuthHandler processes signup, login and profile.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Signup handles POST /users.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "New user account has been created", Result: user.ID})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token})
}

// Profile handles GET /profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := CurrentUser(c)
	if claims == nil {
		writeError(c, domainErrors.ErrForbidden)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{User: claims})
}
