package config

import (
	"github.com/ziadkadry99/livebook/internal/markup"
	"github.com/ziadkadry99/livebook/internal/theme"
)

// DefaultAssets are glob patterns, relative to the content directory,
// copied verbatim by livebook build.
var DefaultAssets = []string{
	"images/**",
	"**/*.{png,jpg,jpeg,gif,svg,webp}",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:           "Panaversity",
		Tagline:         "AI-Driven Education",
		ChatPath:        "/ask",
		Theme:           theme.Dark,
		HighlightStyle:  markup.DefaultStyle,
		HighlightActive: true,
		Server: ServerConfig{
			Port: 8080,
		},
		Build: BuildConfig{
			OutputDir: "site",
			Assets:    append([]string(nil), DefaultAssets...),
		},
	}
}
