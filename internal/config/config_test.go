package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_KEY_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, GetEnvInt("TEST_INT_BAD", 7))

	t.Setenv("TEST_INT_NEG", "-5")
	assert.Equal(t, 7, GetEnvInt("TEST_INT_NEG", 7))
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "America/Los_Angeles"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", loc.String())

	cfg = &Config{}
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.NotNil(t, loc)

	cfg = &Config{Timezone: "Not/AZone"}
	_, err = cfg.Location()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{GmailAccessToken: "token"}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{}
	assert.Error(t, cfg.Validate())

	cfg = &Config{GmailAccessToken: "token", Timezone: "Not/AZone"}
	assert.Error(t, cfg.Validate())
}
