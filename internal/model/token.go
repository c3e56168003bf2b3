package model

import "github.com/google/uuid"

// TokenManager issues and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ParseAccessToken(tokenString string) (uuid.UUID, error)
}
