package theme

import (
	"path/filepath"
	"testing"

	"github.com/bradleyyang/pitch-perfect-v2/config"
)

func newTestStore(t *testing.T, stored string, terminalDark bool) (*Store, string, *bool) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Theme = stored

	var applied bool
	s := NewStore(cfg, path,
		WithDetect(func() bool { return terminalDark }),
		WithApply(func(dark bool) { applied = dark }),
	)
	return s, path, &applied
}

// TestResolveStoredPreference tests that a stored value wins over detection
func TestResolveStoredPreference(t *testing.T) {
	s, _, applied := newTestStore(t, config.ThemeLight, true)
	if s.Dark() {
		t.Error("expected stored light preference to win over dark terminal")
	}
	if *applied {
		t.Error("expected light theme applied to renderer")
	}

	s, _, applied = newTestStore(t, config.ThemeDark, false)
	if !s.Dark() {
		t.Error("expected stored dark preference to win over light terminal")
	}
	if !*applied {
		t.Error("expected dark theme applied to renderer")
	}
}

// TestResolveTerminalFallback tests detection when nothing is stored
func TestResolveTerminalFallback(t *testing.T) {
	s, _, _ := newTestStore(t, "", true)
	if !s.Dark() {
		t.Error("expected dark terminal fallback")
	}

	s, _, _ = newTestStore(t, "", false)
	if s.Dark() {
		t.Error("expected light terminal fallback")
	}
	if s.Name() != "light" {
		t.Errorf("expected name light, got %q", s.Name())
	}
}

// TestTogglePersists tests that toggling writes the new value and applies it
func TestTogglePersists(t *testing.T) {
	s, path, applied := newTestStore(t, config.ThemeLight, false)

	if err := s.Toggle(); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !s.Dark() {
		t.Error("expected dark after toggling away from light")
	}
	if !*applied {
		t.Error("expected dark applied to renderer")
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Theme != config.ThemeDark {
		t.Errorf("expected stored theme dark, got %q", loaded.Theme)
	}

	// Toggling back persists light and applies the light style.
	if err := s.Toggle(); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if s.Dark() || *applied {
		t.Error("expected light active and applied after second toggle")
	}
	loaded, err = config.Load(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Theme != config.ThemeLight {
		t.Errorf("expected stored theme light, got %q", loaded.Theme)
	}
}

// TestFirstToggleWithoutStoredPreference tests that an absent preference
// counts as dark, so the first toggle lands on light even when the terminal
// already detected light.
func TestFirstToggleWithoutStoredPreference(t *testing.T) {
	s, path, applied := newTestStore(t, "", false)

	if err := s.Toggle(); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if s.Dark() {
		t.Error("expected light after first toggle")
	}
	if *applied {
		t.Error("expected light applied to renderer")
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Theme != config.ThemeLight {
		t.Errorf("expected stored theme light, got %q", loaded.Theme)
	}
}
