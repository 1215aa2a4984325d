package middleware

import (
	"log/slog"
	"net/http"

	"academy/internal/delivery/api/response"
	deliverycontext "academy/internal/delivery/context"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"

	"github.com/labstack/echo/v4"
)

// echoErrorCodes names the framework generated statuses in the same vocabulary as AppError.
var echoErrorCodes = map[int]string{
	http.StatusBadRequest:            domainerrors.ErrBadRequest.ErrorCode(),
	http.StatusUnauthorized:          domainerrors.ErrMissingToken.ErrorCode(),
	http.StatusForbidden:             domainerrors.ErrForbidden.ErrorCode(),
	http.StatusNotFound:              domainerrors.ErrNotFound.ErrorCode(),
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: domainerrors.ErrPayloadTooLarge.ErrorCode(),
	http.StatusUnsupportedMediaType:  domainerrors.ErrUnsupportedMediaType.ErrorCode(),
	http.StatusTooManyRequests:       domainerrors.ErrTooManyRequests.ErrorCode(),
	http.StatusServiceUnavailable:    "SERVICE_UNAVAILABLE",
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		code, known := echoErrorCodes[httpErr.Code]
		if !known {
			code = "HTTP_ERROR"
		}

		if httpErr.Code >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.Int("status", httpErr.Code), slog.Any("error", err))
		}
		_ = response.Error(c, httpErr.Code, code, message, "")

		return
	}

	// Do not expose internal details to the client.
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
