package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-board/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalProdid", config.ICalProdid},
		{"FallbackPhotoName", config.FallbackPhotoName},
		{"RouteGenerate", config.RouteGenerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 7, config.WindowDays, "The covered week is exactly seven days")
	assert.Equal(t, 4, config.RowCapacity, "Grid rows hold at most four celebrants")
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
	assert.Less(t, config.RowOriginSingle, config.RowOriginMulti,
		"Single-row boards use the closer-to-top origin")
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Birthday-Board/"), "UserAgent must start with AppName/")
}

// TestGeometry_FitsCanvas verifies the grid never overflows the canvas
// for the row counts the layout can produce with a realistic roster.
func TestGeometry_FitsCanvas(t *testing.T) {
	t.Parallel()

	const maxRows = 3
	lowest := config.RowOriginMulti + float64(maxRows-1)*config.RowPitch +
		config.PhotoRadius + config.NameOffsetY
	assert.Less(t, lowest, float64(config.CanvasHeight),
		"Three full rows plus names must fit the canvas")
	assert.Greater(t, config.PhotoRadius*2*config.RowCapacity, 0.0)
}

// TestLoad_Validation exercises the env-driven loader.
func TestLoad_Validation(t *testing.T) {
	t.Run("MissingSource", func(t *testing.T) {
		t.Setenv(config.EnvRosterSource, "")
		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "roster source")
	})

	t.Run("BadMode", func(t *testing.T) {
		t.Setenv(config.EnvRosterSource, "roster.csv")
		t.Setenv(config.EnvRosterMode, "ftp")
		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported roster mode")
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv(config.EnvRosterSource, "roster.csv")
		t.Setenv(config.EnvRosterMode, "")
		t.Setenv(config.EnvPort, "")
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPort, cfg.Port)
		assert.Equal(t, config.SourceModeLocal, cfg.RosterMode)
		assert.Equal(t, config.DefaultLanguage, cfg.Language)
		assert.Contains(t, cfg.PublicBaseURL, config.RouteFiles,
			"Derived public base URL should point at the files route")
	})

	t.Run("BadLanguage", func(t *testing.T) {
		t.Setenv(config.EnvRosterSource, "roster.csv")
		t.Setenv(config.EnvLanguage, "xx")
		_, err := config.Load()
		require.Error(t, err)
	})
}
