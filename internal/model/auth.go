package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// ContextKey is the type of request context keys set by middleware.
type ContextKey string

// UserIDKey holds the opaque user id issued by the identity provider.
const UserIDKey ContextKey = "userID"

// JWTCustomClaims is the token payload issued by the identity provider.
// Subject carries the user id.
type JWTCustomClaims struct {
	Name     string `json:"name,omitempty"`
	ImageSrc string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}
