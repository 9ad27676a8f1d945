package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest carries the shared passphrase for the access gate.
type LoginRequest struct {
	Passphrase string `json:"passphrase" validate:"required"`
}

// LoginResponse returns the issued access token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
}

// JWTClaims is the token payload for the passphrase gate. There is no user
// model; the subject is the shared staff session.
type JWTClaims struct {
	jwt.RegisteredClaims
}
