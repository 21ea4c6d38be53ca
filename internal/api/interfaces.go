package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/attendance/pkg/entity"
	"github.com/limbo/attendance/pkg/identity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
	TTL() time.Duration
}

// IdentityVerifierI turns an identity-provider token into the caller's identity.
type IdentityVerifierI interface {
	Verify(token string) (*identity.Identity, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
