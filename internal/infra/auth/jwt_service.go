// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"academy/config"
	"academy/internal/domain/entity"
	"academy/internal/domain/service"
)

// ErrInvalidToken is returned for every token that fails parsing, signature, expiry or type checks.
var ErrInvalidToken = errors.New("invalid token")

const refreshTokenTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTokenTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a principal.
func (s *jwtService) GenerateTokens(principal *entity.Principal) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(principal, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(principal, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateAccessToken creates only an access token.
func (s *jwtService) GenerateAccessToken(principal *entity.Principal) (string, error) {
	return s.generateToken(principal, service.TokenTypeAccess)
}

// ValidateToken parses the token with the secret matching tokenType.
// Any failure collapses into ErrInvalidToken.
func (s *jwtService) ValidateToken(tokenString, tokenType string) (*service.Claims, error) {
	secret, _, err := s.keyFor(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.Type != tokenType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) keyFor(tokenType string) ([]byte, time.Duration, error) {
	switch tokenType {
	case service.TokenTypeAccess:
		return s.accessSecret, s.accessTTL, nil
	case service.TokenTypeRefresh:
		return s.refreshSecret, s.refreshTTL, nil
	default:
		return nil, 0, errors.Wrapf(ErrInvalidToken, "unknown token type %q", tokenType)
	}
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(principal *entity.Principal, tokenType string) (string, error) {
	secret, ttl, err := s.keyFor(tokenType)
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := &service.Claims{
		ID:       principal.ID,
		Username: principal.Username,
		Email:    principal.Email,
		Role:     principal.Role,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
