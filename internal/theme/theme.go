// Package theme holds the process-wide dark/light presentation flag.
package theme

import "sync"

// Mode names a theme in configuration.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Theme is the process-wide presentation flag. Toggle is its only mutator.
type Theme struct {
	mu   sync.RWMutex
	dark bool
}

// New returns a Theme initialized to mode. Anything other than Light is dark.
func New(mode Mode) *Theme {
	return &Theme{dark: mode != Light}
}

// Dark reports whether the dark theme is active.
func (t *Theme) Dark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dark
}

// Toggle flips the theme and returns the new dark flag.
func (t *Theme) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = !t.dark
	return t.dark
}

// Mode returns the active mode.
func (t *Theme) Mode() Mode {
	if t.Dark() {
		return Dark
	}
	return Light
}

// Class returns the global style marker applied to the document root:
// "dark" for the dark theme, empty otherwise.
func (t *Theme) Class() string {
	if t.Dark() {
		return "dark"
	}
	return ""
}
