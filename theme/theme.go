// Package theme owns the dark/light preference. The resolved theme comes
// from the stored preference when one exists, otherwise from the terminal's
// detected background. Changes persist to the config file and are mirrored
// onto the process-wide lipgloss renderer so every style reacts.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bradleyyang/pitch-perfect-v2/config"
)

// Store is the single owner of the theme flag. Consumers read through it;
// Toggle is the only mutation entry point.
type Store struct {
	dark bool
	cfg  *config.Config
	path string

	// detect and apply are swappable for tests; defaults talk to lipgloss.
	detect func() bool
	apply  func(dark bool)
}

// Option configures a Store.
type Option func(*Store)

// WithDetect overrides terminal background detection.
func WithDetect(detect func() bool) Option {
	return func(s *Store) { s.detect = detect }
}

// WithApply overrides how the resolved theme is applied to the renderer.
func WithApply(apply func(dark bool)) Option {
	return func(s *Store) { s.apply = apply }
}

// NewStore resolves the initial theme from cfg and applies it. cfg and path
// are retained so Toggle can persist changes.
func NewStore(cfg *config.Config, path string, opts ...Option) *Store {
	s := &Store{
		cfg:    cfg,
		path:   path,
		detect: lipgloss.HasDarkBackground,
		apply:  lipgloss.SetHasDarkBackground,
	}
	for _, opt := range opts {
		opt(s)
	}

	switch cfg.Theme {
	case config.ThemeDark:
		s.dark = true
	case config.ThemeLight:
		s.dark = false
	default:
		s.dark = s.detect()
	}

	s.apply(s.dark)
	return s
}

// Dark reports whether the dark theme is active.
func (s *Store) Dark() bool { return s.dark }

// Name returns "dark" or "light" for display and persistence.
func (s *Store) Name() string {
	if s.dark {
		return config.ThemeDark
	}
	return config.ThemeLight
}

// Toggle flips the stored preference, persists the new value, and re-applies
// it to the renderer. An absent preference counts as dark, so the first
// toggle always lands on light regardless of what the terminal detected.
func (s *Store) Toggle() error {
	s.dark = s.cfg.Theme == config.ThemeLight
	s.cfg.Theme = s.Name()
	s.apply(s.dark)
	return s.cfg.Save(s.path)
}
