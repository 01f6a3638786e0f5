package media

import (
	"strings"
	"testing"
	"time"
)

// TestBuildRecordArgs tests capture command construction per platform
func TestBuildRecordArgs(t *testing.T) {
	tests := []struct {
		goos      string
		wantInput string
	}{
		{"linux", "pulse"},
		{"darwin", "avfoundation"},
		{"windows", "dshow"},
		{"freebsd", "pulse"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			args := buildRecordArgs(tt.goos, "/tmp/out.wav")
			joined := strings.Join(args, " ")

			if !strings.Contains(joined, "-f "+tt.wantInput) {
				t.Errorf("expected input format %q in args: %v", tt.wantInput, args)
			}
			if !strings.Contains(joined, "-ar 16000") {
				t.Errorf("expected 16kHz sample rate in args: %v", args)
			}
			if !strings.Contains(joined, "-ac 1") {
				t.Errorf("expected mono capture in args: %v", args)
			}
			if !strings.Contains(joined, "pcm_s16le") {
				t.Errorf("expected WAV codec in args: %v", args)
			}
			if args[len(args)-1] != "/tmp/out.wav" {
				t.Errorf("expected output path last, got %v", args[len(args)-1])
			}
		})
	}
}

// TestIsVideo tests video container detection
func TestIsVideo(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"pitch.mp4", true},
		{"pitch.webm", true},
		{"pitch.MP4", true},
		{"pitch.mp3", false},
		{"pitch.wav", false},
		{"deck.pdf", false},
	}

	for _, tt := range tests {
		if got := IsVideo(tt.path); got != tt.want {
			t.Errorf("IsVideo(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

// TestFormatDuration tests timestamp display formatting
func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{42 * time.Second, "00:42"},
		{3*time.Minute + 5*time.Second, "03:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestFormatSize tests byte count display formatting
func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 bytes"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
