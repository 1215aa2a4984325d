package middleware

import (
	"time"

	"academy/config"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const limiterEntryTTL = 3 * time.Minute

// NewLoginRateLimiter limits login attempts per client IP to
// cfg.Auth.LoginRateLimit per minute, allowing that many in a burst.
func NewLoginRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	perMinute := cfg.Auth.LoginRateLimit

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		Burst:     perMinute,
		ExpiresIn: limiterEntryTTL,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return errors.Wrap(domainerrors.ErrBadRequest, err.Error())
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return domainerrors.ErrTooManyRequests.WithDetails("too many login attempts, retry in a minute")
		},
	})
}
