package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizhub/internal/config"
	"quizhub/internal/domain"
	"quizhub/internal/dto"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService is the access gate's token side: it validates bearer tokens into
// identities and mints tokens for tooling and tests. User registration and
// credential handling live outside this service.
type AuthService interface {
	ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateToken(userID string, role domain.Role, ttl time.Duration) (string, error)
}

type authServiceImpl struct {
	secretKey []byte
	issuer    string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(appConfig *config.Config) (AuthService, error) {
	if len(appConfig.JWT.SecretKey) < 32 {
		return nil, errors.New("jwt secret key must be at least 32 bytes long")
	}
	return &authServiceImpl{
		secretKey: []byte(appConfig.JWT.SecretKey),
		issuer:    "quizhub",
	}, nil
}

// ValidateToken parses and verifies a bearer token and returns its claims.
func (s *authServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user id claim", ErrInvalidJWTToken)
	}
	if claims.Role != domain.RoleUser && claims.Role != domain.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidJWTToken, claims.Role)
	}
	return claims, nil
}

// CreateToken mints a signed token for the given identity.
func (s *authServiceImpl) CreateToken(userID string, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &dto.AuthClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
