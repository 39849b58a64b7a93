package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT claim set accepted by the API.
// Only the standard claims plus an optional role are read.
type Claims struct {
	// Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
