package router

import (
	"net/http"

	"github.com/jimpyjack/stream-donations/internal/handler"

	"github.com/labstack/echo/v4"
)

func SetupRoutes(
	e *echo.Echo,
	pollHandler *handler.PollHandler,
	donationHandler *handler.DonationHandler,
	settingsHandler *handler.SettingsHandler,
	soundbiteHandler *handler.SoundbiteHandler,
	rouletteHandler *handler.RouletteHandler,
) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api")

	// Poll cycle: scheduled overlay refresh and the admin "check now" button
	api.GET("/poll", pollHandler.Poll)

	// Donation ledger
	api.GET("/donations", donationHandler.GetDonations)
	api.DELETE("/donations", donationHandler.ClearDonations)
	api.POST("/donations/test", donationHandler.AddTestDonation)

	// Display state
	api.GET("/goal", settingsHandler.GetGoal)
	api.PUT("/goal", settingsHandler.UpdateGoal)
	api.GET("/theme", settingsHandler.GetTheme)
	api.PUT("/theme", settingsHandler.UpdateTheme)
	api.GET("/audio", settingsHandler.GetAudio)
	api.PUT("/audio", settingsHandler.UpdateAudio)
	api.GET("/movie-count", settingsHandler.GetMovieCount)
	api.PUT("/movie-count", settingsHandler.UpdateMovieCount)
	api.GET("/audio-files", soundbiteHandler.ListFiles)

	// Soundbites
	api.GET("/soundbites", soundbiteHandler.GetSoundbites)
	api.PUT("/soundbites", soundbiteHandler.UpdateSoundbites)
	api.POST("/soundbites/play", soundbiteHandler.PlaySoundbite)
	api.GET("/soundbites/files", soundbiteHandler.ListFiles)

	// Roulette voting
	api.GET("/roulette", rouletteHandler.GetState)
	api.POST("/roulette", rouletteHandler.SubmitVote)
	api.PUT("/roulette", rouletteHandler.ApplyAction)
}
