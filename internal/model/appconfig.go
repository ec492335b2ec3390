package model

import "runtime"

// AppConfig holds application-wide preferences for the eraser tooling.
type AppConfig struct {
	// Eraser defaults
	DefaultEraserWidth float64 `json:"default_eraser_width"` // world units
	Workers            int     `json:"workers"`              // 0 = one per CPU

	// Application preferences
	LogLevel     string   `json:"log_level"` // "debug", "info", "warn", "error"
	RecentScenes []string `json:"recent_scenes"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultEraserWidth: 20,
		Workers:            0,
		LogLevel:           "info",
		RecentScenes:       []string{},
	}
}

// Flags holds command-line values that override the config file.
// Zero values leave the file's setting in place.
type Flags struct {
	EraserWidth float64
	Workers     int
	LogLevel    string
}

// Resolve applies flag overrides and fills anything still unset with defaults.
func (c *AppConfig) Resolve(flags Flags) {
	if flags.EraserWidth > 0 {
		c.DefaultEraserWidth = flags.EraserWidth
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	defaults := DefaultAppConfig()
	if c.DefaultEraserWidth <= 0 {
		c.DefaultEraserWidth = defaults.DefaultEraserWidth
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.RecentScenes == nil {
		c.RecentScenes = []string{}
	}
}

// MaxRecentScenes bounds the RecentScenes list.
const MaxRecentScenes = 10

// AddRecentScene moves path to the front of RecentScenes, dropping duplicates
// and trimming the list to MaxRecentScenes.
func (c *AppConfig) AddRecentScene(path string) {
	recent := []string{path}
	for _, p := range c.RecentScenes {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > MaxRecentScenes {
		recent = recent[:MaxRecentScenes]
	}
	c.RecentScenes = recent
}
