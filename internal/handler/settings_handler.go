package handler

import (
	"net/http"

	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/service"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	settingsService service.SettingsService
	logger          echo.Logger
}

func NewSettingsHandler(settingsService service.SettingsService, logger echo.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

func (h *SettingsHandler) GetGoal(c echo.Context) error {
	goal, err := h.settingsService.Goal(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get goal:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get goal",
		})
	}
	return c.JSON(http.StatusOK, goal)
}

func (h *SettingsHandler) UpdateGoal(c echo.Context) error {
	var goal model.Goal
	if err := c.Bind(&goal); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if goal.Target < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Target must be non-negative",
		})
	}

	if err := h.settingsService.SetGoal(c.Request().Context(), goal); err != nil {
		h.logger.Error("Failed to update goal:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update goal",
		})
	}
	return c.JSON(http.StatusOK, goal)
}

func (h *SettingsHandler) GetTheme(c echo.Context) error {
	theme, err := h.settingsService.Theme(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get theme:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get theme",
		})
	}
	return c.JSON(http.StatusOK, theme)
}

func (h *SettingsHandler) UpdateTheme(c echo.Context) error {
	var theme model.Theme
	if err := c.Bind(&theme); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if err := h.settingsService.SetTheme(c.Request().Context(), theme); err != nil {
		h.logger.Error("Failed to update theme:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update theme",
		})
	}
	return c.JSON(http.StatusOK, theme)
}

func (h *SettingsHandler) GetAudio(c echo.Context) error {
	audio, err := h.settingsService.Audio(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get audio settings:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get audio settings",
		})
	}
	return c.JSON(http.StatusOK, audio)
}

func (h *SettingsHandler) UpdateAudio(c echo.Context) error {
	var audio model.AudioSettings
	if err := c.Bind(&audio); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if err := h.settingsService.SetAudio(c.Request().Context(), audio); err != nil {
		h.logger.Error("Failed to update audio settings:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update audio settings",
		})
	}
	return c.JSON(http.StatusOK, audio)
}

func (h *SettingsHandler) GetMovieCount(c echo.Context) error {
	count, err := h.settingsService.MovieCount(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get movie count:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get movie count",
		})
	}
	return c.JSON(http.StatusOK, map[string]int{"count": count})
}

func (h *SettingsHandler) UpdateMovieCount(c echo.Context) error {
	var req struct {
		Count int `json:"count"`
	}
	if err := c.Bind(&req); err != nil || req.Count < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid count",
		})
	}

	if err := h.settingsService.SetMovieCount(c.Request().Context(), req.Count); err != nil {
		h.logger.Error("Failed to update movie count:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update movie count",
		})
	}
	return c.JSON(http.StatusOK, map[string]int{"count": req.Count})
}
