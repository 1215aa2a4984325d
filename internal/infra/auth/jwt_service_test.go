package auth

import (
	"testing"
	"time"

	"academy/config"
	"academy/internal/domain/entity"
	"academy/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{AccessTokenTTL: time.Hour},
	}
}

func newTestPrincipal() *entity.Principal {
	return &entity.Principal{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleAdmin,
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	principal := newTestPrincipal()

	accessToken, refreshToken, err := jwtService.GenerateTokens(principal)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, principal, accessClaims.Principal())
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.WithinDuration(t, time.Now().Add(time.Hour), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := jwtService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, refreshClaims.ID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), refreshClaims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(newTestPrincipal())
	require.NoError(t, err)

	// Each type is signed with its own secret, so swapping them fails verification.
	_, err = jwtService.ValidateToken(refreshToken, service.TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = jwtService.ValidateToken(accessToken, service.TokenTypeRefresh)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, err := jwtService.GenerateAccessToken(newTestPrincipal())
	require.NoError(t, err)

	tampered := accessToken[:len(accessToken)-2] + "xx"
	_, err = jwtService.ValidateToken(tampered, service.TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl, ok := tokenService.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	accessToken, err := impl.GenerateAccessToken(newTestPrincipal())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(accessToken, service.TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsNonHMAC(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims := &service.Claims{
		ID:   uuid.New(),
		Role: entity.RoleSuperAdmin,
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(unsigned, service.TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	require.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_DefaultAccessTokenDuration(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = nil

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, jwtService.GetAccessTokenDuration())
}
