package service

import (
	"time"

	"academy/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
	Type     string      `json:"type"`
	jwt.RegisteredClaims
}

// Principal returns the identity described by the claims.
func (c *Claims) Principal() *entity.Principal {
	return &entity.Principal{
		ID:       c.ID,
		Username: c.Username,
		Email:    c.Email,
		Role:     c.Role,
	}
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a principal.
	GenerateTokens(principal *entity.Principal) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only an access token.
	GenerateAccessToken(principal *entity.Principal) (string, error)

	// ValidateToken checks signature, expiry and that the token has the expected type.
	ValidateToken(tokenString, tokenType string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration
}
