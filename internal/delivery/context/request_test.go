package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Run("prefers echo value", func(t *testing.T) {
		c := newEchoContext()
		c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
		SetRequestID(c, "from-echo")

		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		c := newEchoContext()
		c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))

		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("empty without middleware", func(t *testing.T) {
		assert.Empty(t, GetRequestID(newEchoContext()))
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestSetPrincipal_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), slog.New(slog.NewJSONHandler(&buf, nil)))))
	principal := &entity.Principal{ID: uuid.New(), Username: "alice", Role: entity.RoleAdmin}

	SetPrincipal(c, principal)

	assert.Same(t, principal, GetPrincipal(c))
	logger := GetLoggerOrDefault(c.Request().Context(), nil)
	require.NotNil(t, logger)
	logger.Info("program created")
	assert.Contains(t, buf.String(), `"admin_id":"`+principal.ID.String()+`"`)
}

func TestSetPrincipal_WithoutRequestLogger(t *testing.T) {
	c := newEchoContext()

	SetPrincipal(c, &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin})

	assert.NotNil(t, GetPrincipal(c))
	assert.Nil(t, GetLoggerOrDefault(c.Request().Context(), nil))
	assert.Nil(t, GetPrincipal(newEchoContext()))
}
