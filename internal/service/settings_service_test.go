package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/repository/memory"
)

func TestSettingsDefaults(t *testing.T) {
	settingsService := NewSettingsService(memory.NewInMemorySettingsRepository(), testLogger)
	ctx := context.Background()

	goal, err := settingsService.Goal(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Goal{}, goal)

	theme, err := settingsService.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "neon", theme.Preset)
	assert.Equal(t, "#00ff88", theme.BarColor)

	audio, err := settingsService.Audio(ctx)
	require.NoError(t, err)
	assert.True(t, audio.Enabled)
	assert.Equal(t, 0.7, audio.Volume)
	assert.Equal(t, "donation-chime.mp3", audio.SoundFile)

	count, err := settingsService.MovieCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	soundbites, err := settingsService.Soundbites(ctx)
	require.NoError(t, err)
	assert.Empty(t, soundbites.Configs)
	assert.Nil(t, soundbites.PendingTrigger)
}

func TestSettingsRoundTrip(t *testing.T) {
	settingsService := NewSettingsService(memory.NewInMemorySettingsRepository(), testLogger)
	ctx := context.Background()

	goal := model.Goal{Label: "New PC", Target: 1500, Active: true}
	require.NoError(t, settingsService.SetGoal(ctx, goal))

	got, err := settingsService.Goal(ctx)
	require.NoError(t, err)
	assert.Equal(t, goal, got)

	require.NoError(t, settingsService.SetMovieCount(ctx, 7))
	count, err := settingsService.MovieCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestTriggerSoundbite(t *testing.T) {
	settingsService := NewSettingsService(memory.NewInMemorySettingsRepository(), testLogger)
	ctx := context.Background()

	configs := []model.SoundbiteConfig{
		{Filename: "airhorn.mp3", Label: "Airhorn", Enabled: true, Volume: 0.8},
	}
	state, err := settingsService.SetSoundbiteConfigs(ctx, configs)
	require.NoError(t, err)
	assert.Equal(t, configs, state.Configs)

	trigger, err := settingsService.TriggerSoundbite(ctx, "airhorn.mp3", 0.8)
	require.NoError(t, err)
	assert.NotEmpty(t, trigger.ID)
	assert.Equal(t, "airhorn.mp3", trigger.Filename)

	// The trigger is pending until the overlay consumes it; configs survive.
	state, err = settingsService.Soundbites(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.PendingTrigger)
	assert.Equal(t, trigger.ID, state.PendingTrigger.ID)
	assert.Equal(t, configs, state.Configs)
}
