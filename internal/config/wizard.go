package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/livebook/internal/theme"
)

// detectContentDir returns "content" when the working directory already
// holds a book manifest there.
func detectContentDir() string {
	if _, err := os.Stat("content/book.yaml"); err == nil {
		return "content"
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to livebook! Let's configure your book.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Book title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 2. Content directory.
	contentDir := detectContentDir()
	if contentDir != "" {
		fmt.Printf("Found a book manifest in %s/\n\n", contentDir)
	}
	contentPrompt := promptui.Prompt{
		Label:   "Content directory (leave blank for the built-in book)",
		Default: contentDir,
	}
	contentDir, err = contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	// 3. Theme.
	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{string(theme.Dark), string(theme.Light)},
	}
	_, themeStr, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for livebook serve",
		Default: strconv.Itoa(defaults.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 5. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for livebook build",
		Default: defaults.Build.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	cfg := defaults
	cfg.Title = title
	cfg.ContentDir = contentDir
	cfg.Theme = theme.Mode(themeStr)
	cfg.Server.Port = port
	cfg.Build.OutputDir = outputDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
