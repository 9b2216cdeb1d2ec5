package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jimpyjack/stream-donations/internal/logger"
	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/repository"
)

const (
	keyGoal       = "goal"
	keyTheme      = "theme"
	keyAudio      = "audio"
	keyMovieCount = "movieCount"
	keySoundbites = "soundbites"
	keyRoulette   = "roulette"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *logger.Logger
}

func NewSettingsService(settingsRepo repository.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// getSetting unmarshals the stored value for key into dest, leaving dest
// untouched (the caller pre-fills the default) when the key is absent.
func (s *settingsService) getSetting(ctx context.Context, key string, dest interface{}) error {
	value, found, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(value, dest); err != nil {
		return fmt.Errorf("failed to decode setting %s: %w", key, err)
	}
	return nil
}

func (s *settingsService) setSetting(ctx context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}
	if err := s.settingsRepo.Set(ctx, key, encoded); err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

func (s *settingsService) Goal(ctx context.Context) (model.Goal, error) {
	goal := model.DefaultGoal()
	err := s.getSetting(ctx, keyGoal, &goal)
	return goal, err
}

func (s *settingsService) SetGoal(ctx context.Context, goal model.Goal) error {
	return s.setSetting(ctx, keyGoal, goal)
}

func (s *settingsService) Theme(ctx context.Context) (model.Theme, error) {
	theme := model.DefaultTheme()
	err := s.getSetting(ctx, keyTheme, &theme)
	return theme, err
}

func (s *settingsService) SetTheme(ctx context.Context, theme model.Theme) error {
	return s.setSetting(ctx, keyTheme, theme)
}

func (s *settingsService) Audio(ctx context.Context) (model.AudioSettings, error) {
	audio := model.DefaultAudioSettings()
	err := s.getSetting(ctx, keyAudio, &audio)
	return audio, err
}

func (s *settingsService) SetAudio(ctx context.Context, audio model.AudioSettings) error {
	return s.setSetting(ctx, keyAudio, audio)
}

func (s *settingsService) MovieCount(ctx context.Context) (int, error) {
	count := 0
	err := s.getSetting(ctx, keyMovieCount, &count)
	return count, err
}

func (s *settingsService) SetMovieCount(ctx context.Context, count int) error {
	return s.setSetting(ctx, keyMovieCount, count)
}

func (s *settingsService) Soundbites(ctx context.Context) (model.SoundbitesState, error) {
	soundbites := model.DefaultSoundbites()
	err := s.getSetting(ctx, keySoundbites, &soundbites)
	return soundbites, err
}

func (s *settingsService) SetSoundbiteConfigs(ctx context.Context, configs []model.SoundbiteConfig) (model.SoundbitesState, error) {
	soundbites, err := s.Soundbites(ctx)
	if err != nil {
		return soundbites, err
	}
	soundbites.Configs = configs
	if err := s.setSetting(ctx, keySoundbites, soundbites); err != nil {
		return soundbites, err
	}
	return soundbites, nil
}

// TriggerSoundbite records a one-shot play request. The overlay consumes it
// on its next soundbites read.
func (s *settingsService) TriggerSoundbite(ctx context.Context, filename string, volume float64) (*model.SoundbiteTrigger, error) {
	soundbites, err := s.Soundbites(ctx)
	if err != nil {
		return nil, err
	}

	trigger := &model.SoundbiteTrigger{
		ID:        uuid.New().String(),
		Filename:  filename,
		Timestamp: time.Now().UnixMilli(),
		Volume:    volume,
	}
	soundbites.PendingTrigger = trigger

	if err := s.setSetting(ctx, keySoundbites, soundbites); err != nil {
		return nil, err
	}
	s.logger.Info("Triggered soundbite:", filename)
	return trigger, nil
}
