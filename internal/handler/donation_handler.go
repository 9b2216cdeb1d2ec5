package handler

import (
	"net/http"

	"github.com/jimpyjack/stream-donations/internal/service"

	"github.com/labstack/echo/v4"
)

type DonationHandler struct {
	donationService service.DonationService
	logger          echo.Logger
}

func NewDonationHandler(donationService service.DonationService, logger echo.Logger) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		logger:          logger,
	}
}

// GetDonations returns the full ledger plus the running total.
func (h *DonationHandler) GetDonations(c echo.Context) error {
	donations, total, err := h.donationService.ListDonations(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get donations:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get donations",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"donations": donations,
		"total":     total,
	})
}

// ClearDonations wipes the ledger. Admin-only in spirit; the dashboard asks
// for confirmation before calling it.
func (h *DonationHandler) ClearDonations(c echo.Context) error {
	if err := h.donationService.ClearDonations(c.Request().Context()); err != nil {
		h.logger.Error("Failed to clear donations:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to clear donations",
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// AddTestDonation inserts a synthetic donation for overlay testing.
func (h *DonationHandler) AddTestDonation(c echo.Context) error {
	donation, err := h.donationService.AddTestDonation(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to add test donation:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to add test donation",
		})
	}

	return c.JSON(http.StatusOK, donation)
}
