package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/service"

	"github.com/labstack/echo/v4"
)

var audioExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".ogg": true,
	".m4a": true,
}

type SoundbiteHandler struct {
	settingsService service.SettingsService
	mediaDir        string
	logger          echo.Logger
}

func NewSoundbiteHandler(settingsService service.SettingsService, mediaDir string, logger echo.Logger) *SoundbiteHandler {
	return &SoundbiteHandler{
		settingsService: settingsService,
		mediaDir:        mediaDir,
		logger:          logger,
	}
}

// GetSoundbites returns configs plus any pending one-shot trigger.
func (h *SoundbiteHandler) GetSoundbites(c echo.Context) error {
	soundbites, err := h.settingsService.Soundbites(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get soundbites:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get soundbites",
		})
	}
	return c.JSON(http.StatusOK, soundbites)
}

// UpdateSoundbites replaces the configured soundbite list.
func (h *SoundbiteHandler) UpdateSoundbites(c echo.Context) error {
	var req struct {
		Configs []model.SoundbiteConfig `json:"configs"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	soundbites, err := h.settingsService.SetSoundbiteConfigs(c.Request().Context(), req.Configs)
	if err != nil {
		h.logger.Error("Failed to update soundbites:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update soundbites",
		})
	}
	return c.JSON(http.StatusOK, soundbites)
}

// PlaySoundbite sets the pending trigger the overlay will play once.
func (h *SoundbiteHandler) PlaySoundbite(c echo.Context) error {
	var req struct {
		Filename string  `json:"filename"`
		Volume   float64 `json:"volume"`
	}
	if err := c.Bind(&req); err != nil || req.Filename == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Filename is required",
		})
	}
	if req.Volume <= 0 || req.Volume > 1 {
		req.Volume = 1
	}

	trigger, err := h.settingsService.TriggerSoundbite(c.Request().Context(), req.Filename, req.Volume)
	if err != nil {
		h.logger.Error("Failed to trigger soundbite:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to trigger soundbite",
		})
	}
	return c.JSON(http.StatusOK, trigger)
}

// ListFiles returns the audio files available in the media directory.
func (h *SoundbiteHandler) ListFiles(c echo.Context) error {
	files, err := listAudioFiles(h.mediaDir)
	if err != nil {
		h.logger.Error("Failed to list media files:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to list media files",
		})
	}
	return c.JSON(http.StatusOK, map[string][]string{"files": files})
}

func listAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if audioExtensions[ext] {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
