package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"
	mockUC "academy/internal/mocks/usecase"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	uc := mockUC.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: uc}), uc
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success returns tokens and account", func(t *testing.T) {
		h, uc := createTestAuthHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"username":"coach","password":"secret123"}`)

		admin := &entity.AdminUser{ID: uuid.New(), Username: "coach", PasswordHash: "$2a$hash", Role: entity.RoleAdmin}
		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "coach", Password: "secret123"}).
			Return(&usecase.LoginOutput{User: admin, AccessToken: "a", RefreshToken: "r", ExpiresIn: time.Hour}, nil)

		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "$2a$hash")

		var out LoginResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, "a", out.AccessToken)
		assert.Equal(t, "r", out.RefreshToken)
		assert.Equal(t, int64(3600), out.ExpiresIn)
		assert.Equal(t, "coach", out.User.Username)
	})

	t.Run("missing password fails validation", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"username":"coach"}`)

		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "password: required", env.Error.Details)
	})

	t.Run("bad credentials", func(t *testing.T) {
		h, uc := createTestAuthHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"username":"coach","password":"nope"}`)

		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	h, uc := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/api/auth/refresh", `{"refreshToken":"r"}`)

	uc.EXPECT().Refresh(mock.Anything, "r").Return(&usecase.RefreshOutput{AccessToken: "a2", ExpiresIn: time.Minute}, nil)

	require.NoError(t, h.Refresh(c))

	var out RefreshResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, "a2", out.AccessToken)
	assert.Equal(t, int64(60), out.ExpiresIn)
}

func TestAuthHandler_GetProfile(t *testing.T) {
	h, uc := createTestAuthHandler(t)
	principal := adminPrincipal()
	c, rec := newTestContext(http.MethodGet, "/api/auth/profile", nil, "")
	deliverycontext.SetPrincipal(c, principal)

	uc.EXPECT().GetProfile(mock.Anything, principal.ID).Return(&entity.AdminUser{ID: principal.ID, Username: "root"}, nil)

	require.NoError(t, h.GetProfile(c))

	var out struct {
		User entity.AdminUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, principal.ID, out.User.ID)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	h, uc := createTestAuthHandler(t)
	principal := adminPrincipal()
	c, rec := newJSONContext(http.MethodPost, "/api/auth/change-password", `{"currentPassword":"old-secret","newPassword":"short"}`)
	deliverycontext.SetPrincipal(c, principal)

	uc.EXPECT().ChangePassword(mock.Anything, &usecase.ChangePasswordInput{
		AdminID:         principal.ID,
		CurrentPassword: "old-secret",
		NewPassword:     "short",
	}).Return(errors.WithStack(domainerrors.ErrPasswordTooShort))

	require.NoError(t, h.ChangePassword(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PASSWORD_TOO_SHORT", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_CreateAdmin(t *testing.T) {
	t.Run("unknown role is rejected before the use case", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/api/auth/admins",
			`{"username":"new","email":"new@example.com","password":"long-enough","role":"owner"}`)

		require.NoError(t, h.CreateAdmin(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("created", func(t *testing.T) {
		h, uc := createTestAuthHandler(t)
		principal := adminPrincipal()
		c, rec := newJSONContext(http.MethodPost, "/api/auth/admins",
			`{"username":"new","email":"new@example.com","password":"long-enough"}`)
		deliverycontext.SetPrincipal(c, principal)

		uc.EXPECT().CreateAdmin(mock.Anything, principal, &usecase.CreateAdminInput{
			Username: "new",
			Email:    "new@example.com",
			Password: "long-enough",
		}).Return(&entity.AdminUser{ID: uuid.New(), Username: "new", Role: entity.RoleAdmin}, nil)

		require.NoError(t, h.CreateAdmin(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Admin created", decodeEnvelope(t, rec).Message)
	})

	t.Run("conflict", func(t *testing.T) {
		h, uc := createTestAuthHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/api/auth/admins",
			`{"username":"taken","email":"t@example.com","password":"long-enough"}`)
		deliverycontext.SetPrincipal(c, adminPrincipal())

		uc.EXPECT().CreateAdmin(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrAdminAlreadyExists))

		require.NoError(t, h.CreateAdmin(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
