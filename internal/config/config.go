package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/livebook/internal/markup"
	"github.com/ziadkadry99/livebook/internal/theme"
)

// DefaultPath is the config file livebook looks for in the working directory.
const DefaultPath = ".livebook.yml"

// envPrefix marks environment overrides. A double underscore separates
// nested keys: LIVEBOOK_SERVER__PORT -> server.port.
const envPrefix = "LIVEBOOK_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LIVEBOOK_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: LIVEBOOK_THEME -> theme, etc.
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists from the file replace the defaults rather than merging into them.
	if k.Exists("build.assets") {
		cfg.Build.Assets = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validThemes is the set of recognized theme values.
var validThemes = map[theme.Mode]bool{
	theme.Dark:  true,
	theme.Light: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title is required")
	}

	if !strings.HasPrefix(c.ChatPath, "/") {
		return fmt.Errorf("chat_path %q must start with /", c.ChatPath)
	}
	if strings.HasPrefix(c.ChatPath, "/docs/") || c.ChatPath == "/" {
		return fmt.Errorf("chat_path %q collides with chapter routes", c.ChatPath)
	}

	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be one of dark, light", c.Theme)
	}

	if c.HighlightStyle != "" && !markup.ValidStyle(c.HighlightStyle) {
		return fmt.Errorf("unknown highlight_style %q", c.HighlightStyle)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Build.OutputDir == "" {
		return fmt.Errorf("build.output_dir is required")
	}

	return nil
}
