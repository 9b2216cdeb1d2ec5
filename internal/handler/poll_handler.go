package handler

import (
	"net/http"

	"github.com/jimpyjack/stream-donations/internal/service"

	"github.com/labstack/echo/v4"
)

type PollHandler struct {
	pollService service.PollService
	logger      echo.Logger
}

func NewPollHandler(pollService service.PollService, logger echo.Logger) *PollHandler {
	return &PollHandler{
		pollService: pollService,
		logger:      logger,
	}
}

// Poll runs one mailbox poll cycle and returns the updated ledger. The
// overlay calls this on an interval; the admin dashboard's "check now"
// button hits the same endpoint.
func (h *PollHandler) Poll(c echo.Context) error {
	result, err := h.pollService.PollOnce(c.Request().Context())
	if err != nil {
		h.logger.Error("Poll cycle failed:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to poll for donations",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"donations": result.Donations,
		"newIds":    result.NewIDs,
		"total":     result.Total,
	})
}
