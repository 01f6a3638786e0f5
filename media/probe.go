package media

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// AudioInfo describes an audio or video file as seen by ffprobe.
type AudioInfo struct {
	Duration time.Duration
	Codec    string
	HasVideo bool
}

// ProbeAudio inspects an audio/video file with ffprobe.
func ProbeAudio(path string) (*AudioInfo, error) {
	durationCmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	durationOut, err := durationCmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to probe file: %w", err)
	}
	durationSec, err := strconv.ParseFloat(strings.TrimSpace(string(durationOut)), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse duration: %w", err)
	}

	audioCmd := exec.Command("ffprobe",
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=codec_name",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	audioOut, _ := audioCmd.Output()
	codec := strings.TrimSpace(string(audioOut))
	if codec == "" {
		return nil, fmt.Errorf("file has no audio track")
	}

	videoCmd := exec.Command("ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_type",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	videoOut, _ := videoCmd.Output()
	hasVideo := strings.TrimSpace(string(videoOut)) == "video"

	return &AudioInfo{
		Duration: time.Duration(durationSec * float64(time.Second)),
		Codec:    codec,
		HasVideo: hasVideo,
	}, nil
}

// ProbePDF opens a PDF locally and returns its page count. Corrupt or
// non-PDF files fail here before any upload is attempted.
func ProbePDF(path string) (int, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer file.Close()

	pages := reader.NumPage()
	if pages < 1 {
		return 0, fmt.Errorf("PDF has no pages")
	}
	return pages, nil
}

// FormatDuration formats a duration as HH:MM:SS or MM:SS.
func FormatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatSize renders a byte count for display.
func FormatSize(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
