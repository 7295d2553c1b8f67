package dto

import (
	"quizhub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims are the JWT claims the access gate issues and validates.
type AuthClaims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}
