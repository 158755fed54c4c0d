package dto

import "github.com/polkiloo/mmtc/internal/domain/model"

// CredentialsRequest describes email/password payload.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// ProfileResponse echoes the verified token claims.
type ProfileResponse struct {
	User *model.Claims `json:"user"`
}
