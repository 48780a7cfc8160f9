package config

import "github.com/ziadkadry99/livebook/internal/theme"

// Config is the top-level livebook configuration, corresponding to .livebook.yml.
type Config struct {
	Title           string       `yaml:"title" koanf:"title"`
	Tagline         string       `yaml:"tagline" koanf:"tagline"`
	ContentDir      string       `yaml:"content_dir,omitempty" koanf:"content_dir"`
	ChatPath        string       `yaml:"chat_path" koanf:"chat_path"`
	Theme           theme.Mode   `yaml:"theme" koanf:"theme"`
	HighlightStyle  string       `yaml:"highlight_style" koanf:"highlight_style"`
	HighlightActive bool         `yaml:"highlight_active" koanf:"highlight_active"`
	Server          ServerConfig `yaml:"server" koanf:"server"`
	Build           BuildConfig  `yaml:"build" koanf:"build"`
}

// ServerConfig holds settings for livebook serve.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// BuildConfig holds settings for the static export.
type BuildConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Assets    []string `yaml:"assets,omitempty" koanf:"assets"`
}
