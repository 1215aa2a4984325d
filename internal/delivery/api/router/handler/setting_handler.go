package handler

import (
	"net/http"

	"academy/internal/delivery/api/response"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SettingHandler exposes site settings keyed by name.
type SettingHandler struct {
	settingUC usecase.SettingUsecase
}

// NewSettingHandler is the constructor for SettingHandler
func NewSettingHandler(settingUC usecase.SettingUsecase) *SettingHandler {
	return &SettingHandler{settingUC: settingUC}
}

// SetSettingRequest represents the request body for PUT /api/settings/:key
type SetSettingRequest struct {
	Value       string  `json:"key_value"`
	Description *string `json:"description"`
}

// List handles GET /api/settings
func (h *SettingHandler) List(c echo.Context) error {
	settings, err := h.settingUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// Get handles GET /api/settings/:key
func (h *SettingHandler) Get(c echo.Context) error {
	setting, err := h.settingUC.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// Set handles PUT /api/settings/:key, creating the setting when it does not exist.
func (h *SettingHandler) Set(c echo.Context) error {
	var req SetSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "expected {key_value, description?}")
	}

	setting, err := h.settingUC.Set(c.Request().Context(), &usecase.SetSettingInput{
		Key:         c.Param("key"),
		Value:       req.Value,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Setting saved", setting)
}

// Delete handles DELETE /api/settings/:key
func (h *SettingHandler) Delete(c echo.Context) error {
	if err := h.settingUC.Delete(c.Request().Context(), c.Param("key")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Setting deleted", nil)
}
