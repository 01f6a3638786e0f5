package media

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// TestDetectKind tests the client-side file gate
func TestDetectKind(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		wantKind Kind
		wantOK   bool
	}{
		{"talk.mp3", "", KindAudio, true},
		{"talk.MP4", "", KindAudio, true},
		{"talk.wav", "", KindAudio, true},
		{"talk.webm", "", KindAudio, true},
		{"deck.pdf", "", KindSlides, true},
		{"deck.PDF", "", KindSlides, true},
		{"notes.txt", "", "", false},
		{"talk.m4a", "", "", false},
		{"talk.flac", "", "", false},
		{"image.png", "", "", false},
		{"noextension", "", "", false},

		// MIME type wins regardless of name
		{"blob", "audio/mpeg", KindAudio, true},
		{"blob", "audio/mp3", KindAudio, true},
		{"blob", "audio/wav", KindAudio, true},
		{"blob", "video/mp4", KindAudio, true},
		{"blob", "audio/webm", KindAudio, true},
		{"blob", "video/webm", KindAudio, true},
		{"blob", "application/pdf", KindSlides, true},
		{"blob", "application/pdf; charset=binary", KindSlides, true},
		{"blob", "text/plain", "", false},

		// Unknown MIME falls back to the extension
		{"talk.wav", "application/octet-stream", KindAudio, true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.mimeType, func(t *testing.T) {
			kind, ok := DetectKind(tt.name, tt.mimeType)
			if ok != tt.wantOK {
				t.Fatalf("DetectKind(%q, %q) ok = %v, want %v", tt.name, tt.mimeType, ok, tt.wantOK)
			}
			if ok && kind != tt.wantKind {
				t.Errorf("DetectKind(%q, %q) = %v, want %v", tt.name, tt.mimeType, kind, tt.wantKind)
			}
		})
	}
}

// TestStageAdd tests staging and rejection
func TestStageAdd(t *testing.T) {
	dir := t.TempDir()
	stage := NewStage()

	t.Run("invalid file is silently dropped", func(t *testing.T) {
		path := touch(t, dir, "notes.txt")
		f, ok := stage.Add(path)
		if ok || f != nil {
			t.Errorf("expected .txt to be rejected, got %+v", f)
		}
		if stage.HasAudio() || stage.HasSlides() {
			t.Error("expected stage to stay empty")
		}
	})

	t.Run("missing file is dropped", func(t *testing.T) {
		if _, ok := stage.Add(filepath.Join(dir, "ghost.wav")); ok {
			t.Error("expected nonexistent file to be rejected")
		}
	})

	t.Run("valid audio is staged", func(t *testing.T) {
		path := touch(t, dir, "talk.wav")
		f, ok := stage.Add(path)
		if !ok {
			t.Fatal("expected .wav to be accepted")
		}
		if f.Kind != KindAudio {
			t.Errorf("expected kind audio, got %v", f.Kind)
		}
		if f.ID == "" {
			t.Error("expected a generated id")
		}
		if stage.Audio() == nil || stage.Audio().Name != "talk.wav" {
			t.Errorf("expected audio slot to hold talk.wav, got %+v", stage.Audio())
		}
	})
}

// TestStageReplacement tests single-occupancy slot semantics
func TestStageReplacement(t *testing.T) {
	dir := t.TempDir()
	stage := NewStage()

	first := touch(t, dir, "first.wav")
	second := touch(t, dir, "second.mp3")
	deck := touch(t, dir, "deck.pdf")

	stage.Add(first)
	stage.Add(deck)

	// A second audio file replaces, not appends.
	stage.Add(second)
	if stage.Audio().Name != "second.mp3" {
		t.Errorf("expected audio slot replaced with second.mp3, got %s", stage.Audio().Name)
	}

	// The PDF slot is untouched by audio staging, and vice versa.
	if stage.Slides() == nil || stage.Slides().Name != "deck.pdf" {
		t.Errorf("expected PDF slot to keep deck.pdf, got %+v", stage.Slides())
	}

	deck2 := touch(t, dir, "deck2.pdf")
	stage.Add(deck2)
	if stage.Slides().Name != "deck2.pdf" {
		t.Errorf("expected PDF slot replaced with deck2.pdf, got %s", stage.Slides().Name)
	}
	if stage.Audio().Name != "second.mp3" {
		t.Errorf("expected audio slot untouched, got %s", stage.Audio().Name)
	}

	// User-provided files are never deleted on replacement.
	if _, err := os.Stat(first); err != nil {
		t.Errorf("expected replaced user file to survive on disk: %v", err)
	}
}

// TestStageTempRelease tests that owned recordings are deleted on
// replacement and reset
func TestStageTempRelease(t *testing.T) {
	dir := t.TempDir()
	stage := NewStage()

	recording := touch(t, dir, "recording.wav")
	if _, ok := stage.AddTemp(recording); !ok {
		t.Fatal("expected recording to stage")
	}

	upload := touch(t, dir, "upload.mp3")
	stage.Add(upload)

	if _, err := os.Stat(recording); !os.IsNotExist(err) {
		t.Error("expected replaced recording to be deleted")
	}

	recording2 := touch(t, dir, "recording2.wav")
	stage.AddTemp(recording2)
	stage.Reset()

	if stage.HasAudio() || stage.HasSlides() {
		t.Error("expected empty stage after reset")
	}
	if _, err := os.Stat(recording2); !os.IsNotExist(err) {
		t.Error("expected owned recording to be deleted on reset")
	}
	if _, err := os.Stat(upload); err != nil {
		t.Errorf("expected user upload to survive reset: %v", err)
	}
}

// TestAddWithMIME tests that a known content type wins over the extension
func TestAddWithMIME(t *testing.T) {
	dir := t.TempDir()
	stage := NewStage()

	t.Run("pdf content type stages despite odd name", func(t *testing.T) {
		path := touch(t, dir, "export.blob")
		f, ok := stage.AddWithMIME(path, "application/pdf")
		if !ok {
			t.Fatal("expected application/pdf content to be accepted")
		}
		if f.Kind != KindSlides {
			t.Errorf("expected kind slides, got %v", f.Kind)
		}
	})

	t.Run("unknown content type falls back to extension", func(t *testing.T) {
		path := touch(t, dir, "talk.mp3")
		f, ok := stage.AddWithMIME(path, "application/octet-stream")
		if !ok {
			t.Fatal("expected .mp3 fallback to be accepted")
		}
		if f.Kind != KindAudio {
			t.Errorf("expected kind audio, got %v", f.Kind)
		}
	})

	t.Run("unsupported content and extension rejected", func(t *testing.T) {
		path := touch(t, dir, "notes.txt")
		if _, ok := stage.AddWithMIME(path, "text/plain; charset=utf-8"); ok {
			t.Error("expected text content to be rejected")
		}
	})
}

// TestSniffMIME tests content type detection from file headers
func TestSniffMIME(t *testing.T) {
	dir := t.TempDir()

	pdfPath := filepath.Join(dir, "deck.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4 minimal"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := SniffMIME(pdfPath); got != "application/pdf" {
		t.Errorf("SniffMIME(pdf) = %q, want application/pdf", got)
	}

	mp3Path := filepath.Join(dir, "talk.mp3")
	if err := os.WriteFile(mp3Path, append([]byte("ID3"), make([]byte, 64)...), 0644); err != nil {
		t.Fatal(err)
	}
	if got := SniffMIME(mp3Path); got != "audio/mpeg" {
		t.Errorf("SniffMIME(mp3) = %q, want audio/mpeg", got)
	}

	if got := SniffMIME(filepath.Join(dir, "ghost.bin")); got != "" {
		t.Errorf("SniffMIME(missing) = %q, want empty", got)
	}
}
