package config

import (
	"fmt"
	"os"
	"slices"
)

// Config carries the process-level settings. Core packages never read
// the environment themselves; everything they need is passed in
// explicitly from here.
type Config struct {
	Port string

	// Roster acquisition
	RosterMode   string // SourceModeWeb, SourceModeLocal or SourceModeInline
	RosterSource string // URL, file path, or literal CSV text depending on mode
	RosterUser   string // HTTP Basic Auth username (web mode only)
	RosterPass   string

	// Photo resolution
	PhotoBaseURL string
	PhotoDir     string

	// Render assets and output
	AssetDir      string
	OutputDir     string
	PublicBaseURL string

	// Notification
	SlackWebhookURL string
	Language        string
}

// Load reads the configuration from the process environment, applying
// defaults where a variable is unset. It validates only what would make
// the process unable to start; per-request inputs are validated later.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            envOr(EnvPort, DefaultPort),
		RosterMode:      envOr(EnvRosterMode, SourceModeLocal),
		RosterSource:    os.Getenv(EnvRosterSource),
		RosterUser:      os.Getenv(EnvRosterUser),
		RosterPass:      os.Getenv(EnvRosterPass),
		PhotoBaseURL:    os.Getenv(EnvPhotoBaseURL),
		PhotoDir:        envOr(EnvPhotoDir, DefaultPhotoDir),
		AssetDir:        envOr(EnvAssetDir, DefaultAssetDir),
		OutputDir:       envOr(EnvOutputDir, DefaultOutputDir),
		PublicBaseURL:   os.Getenv(EnvPublicBaseURL),
		SlackWebhookURL: os.Getenv(EnvSlackWebhook),
		Language:        envOr(EnvLanguage, DefaultLanguage),
	}

	switch cfg.RosterMode {
	case SourceModeWeb, SourceModeLocal, SourceModeInline:
	default:
		return nil, fmt.Errorf("%s: %q", ErrModeUnsupport, cfg.RosterMode)
	}

	if cfg.RosterSource == "" {
		return nil, fmt.Errorf("%s (%s)", ErrRosterSourceEmpty, EnvRosterSource)
	}

	if !slices.Contains(SupportedLanguages, cfg.Language) {
		return nil, fmt.Errorf("%s: %q", ErrLangUnsupported, cfg.Language)
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = SchemeHTTP + "://" + "localhost" + AddrSeparator + cfg.Port + RouteFiles
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
