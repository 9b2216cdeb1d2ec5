package handler

import (
	"errors"
	"net/http"

	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/service"

	"github.com/labstack/echo/v4"
)

type RouletteHandler struct {
	rouletteService service.RouletteService
	logger          echo.Logger
}

func NewRouletteHandler(rouletteService service.RouletteService, logger echo.Logger) *RouletteHandler {
	return &RouletteHandler{
		rouletteService: rouletteService,
		logger:          logger,
	}
}

// stateResponse omits voter timestamps; those are an internal cooldown
// detail, not something the vote page should see.
func stateResponse(state model.RouletteState) map[string]interface{} {
	return map[string]interface{}{
		"active":     state.Active,
		"redVotes":   state.RedVotes,
		"blackVotes": state.BlackVotes,
		"sessionId":  state.SessionID,
	}
}

func (h *RouletteHandler) GetState(c echo.Context) error {
	state, err := h.rouletteService.State(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get roulette state:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get roulette state",
		})
	}
	return c.JSON(http.StatusOK, stateResponse(state))
}

func (h *RouletteHandler) SubmitVote(c echo.Context) error {
	var req struct {
		VoterID string `json:"voterId"`
		Choice  string `json:"choice"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	result, err := h.rouletteService.Vote(c.Request().Context(), req.VoterID, req.Choice)
	if err != nil {
		h.logger.Error("Failed to submit vote:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to submit vote",
		})
	}

	if result.Reason == "invalid" {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *RouletteHandler) ApplyAction(c echo.Context) error {
	var req struct {
		Action string `json:"action"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	state, err := h.rouletteService.Apply(c.Request().Context(), req.Action)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAction) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid action",
			})
		}
		h.logger.Error("Failed to apply roulette action:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to apply roulette action",
		})
	}
	return c.JSON(http.StatusOK, stateResponse(state))
}
