package model

import "time"

// User represents an operator account able to sign in.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Claims is the identity carried by a bearer token.
type Claims struct {
	SubjectID string `json:"subjectId"`
	Email     string `json:"email"`
}
