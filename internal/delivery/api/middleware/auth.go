package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/service"
	"academy/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a valid access token and attaches the principal otherwise.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrMissingToken)
		}

		if err := m.attach(c, authHeader); err != nil {
			return err
		}

		return next(c)
	}
}

// OptionalAuthenticate lets anonymous requests through. A header that is present
// must still carry a valid token.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		if err := m.attach(c, authHeader); err != nil {
			return err
		}

		return next(c)
	}
}

func (m *AuthMiddleware) attach(c echo.Context, authHeader string) error {
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	tokenString = strings.TrimSpace(tokenString)
	if !found || tokenString == "" {
		return errors.WithStack(domainerrors.ErrMissingToken)
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenTypeAccess)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Rejected access token", slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrInvalidToken)
	}

	deliverycontext.SetPrincipal(c, claims.Principal())

	return nil
}

// RequireRole is a middleware factory that checks the principal satisfies requiredRole.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return errors.WithStack(domainerrors.ErrMissingToken)
			}

			if !principal.HasRole(requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole.String())
			}

			return next(c)
		}
	}
}
