package auth

import "strings"

const bearerPrefix = "bearer "

// ExtractBearer returns the token of an "Authorization: Bearer <token>" value.
func ExtractBearer(header string) (string, error) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}
