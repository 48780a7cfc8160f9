package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/ziadkadry99/livebook/internal/book"
	"github.com/ziadkadry99/livebook/internal/config"
	"github.com/ziadkadry99/livebook/internal/markup"
	"github.com/ziadkadry99/livebook/internal/site"
	"github.com/ziadkadry99/livebook/internal/theme"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `livebook init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// contentFS returns the configured content directory, or the embedded
// book when none is set.
func contentFS(cfg *config.Config) (fs.FS, error) {
	if cfg.ContentDir == "" {
		return book.DefaultContent(), nil
	}
	info, err := os.Stat(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content directory %s is not a directory", cfg.ContentDir)
	}
	return os.DirFS(cfg.ContentDir), nil
}

// loadBook reads and renders the book named by cfg.
func loadBook(cfg *config.Config) (*book.Store, fs.FS, error) {
	fsys, err := contentFS(cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := book.Load(fsys, markup.NewRenderer(cfg.HighlightStyle))
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d chapters from %s\n", len(store.Chapters()), contentName(cfg))
	}
	return store, fsys, nil
}

func contentName(cfg *config.Config) string {
	if cfg.ContentDir == "" {
		return "the embedded book"
	}
	return cfg.ContentDir
}

// newSite builds the site for cfg over store.
func newSite(cfg *config.Config, store *book.Store) (*site.Site, error) {
	return site.New(store, theme.New(cfg.Theme), site.Options{
		Title:           cfg.Title,
		Tagline:         cfg.Tagline,
		ChatPath:        cfg.ChatPath,
		HighlightActive: cfg.HighlightActive,
	})
}

// checkBook runs the consistency checks for cfg's routes.
func checkBook(cfg *config.Config, store *book.Store) []book.Problem {
	return book.Check(store, markup.Anchors, cfg.ChatPath)
}
