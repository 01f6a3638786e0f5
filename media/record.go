package media

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// Speech-recognition friendly capture settings: 16 kHz mono PCM.
const (
	captureSampleRate = 16000
	captureChannels   = 1
)

// Recorder captures microphone audio to a temporary WAV file via ffmpeg.
type Recorder struct {
	cmd     *exec.Cmd
	path    string
	started time.Time
}

// buildRecordArgs assembles the ffmpeg arguments for capturing from the
// platform's default audio input device into outPath.
func buildRecordArgs(goos, outPath string) []string {
	var input []string
	switch goos {
	case "darwin":
		input = []string{"-f", "avfoundation", "-i", ":0"}
	case "windows":
		input = []string{"-f", "dshow", "-i", "audio=default"}
	default:
		input = []string{"-f", "pulse", "-i", "default"}
	}

	args := []string{"-y"}
	args = append(args, input...)
	args = append(args,
		"-ar", strconv.Itoa(captureSampleRate),
		"-ac", strconv.Itoa(captureChannels),
		"-codec:a", "pcm_s16le",
		outPath,
	)
	return args
}

// StartRecording begins capturing from the default microphone. Call Stop to
// finish and obtain the recorded file path.
func StartRecording() (*Recorder, error) {
	out, err := os.CreateTemp("", "pitch-recording-*.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create recording file: %w", err)
	}
	path := out.Name()
	out.Close()

	cmd := exec.Command("ffmpeg", buildRecordArgs(runtime.GOOS, path)...)
	if err := cmd.Start(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	return &Recorder{
		cmd:     cmd,
		path:    path,
		started: time.Now(),
	}, nil
}

// Elapsed reports how long the recording has been running.
func (r *Recorder) Elapsed() time.Duration {
	return time.Since(r.started)
}

// Stop ends the capture gracefully and returns the recorded file path.
// ffmpeg finalizes the WAV header on SIGINT; a hard kill would truncate it.
func (r *Recorder) Stop() (string, error) {
	if runtime.GOOS == "windows" {
		r.cmd.Process.Kill()
	} else if err := r.cmd.Process.Signal(syscall.SIGINT); err != nil {
		r.cmd.Process.Kill()
	}

	// ffmpeg exits non-zero when interrupted; the file is still valid.
	r.cmd.Wait()

	info, err := os.Stat(r.path)
	if err != nil || info.Size() == 0 {
		os.Remove(r.path)
		return "", fmt.Errorf("recording produced no audio; check your microphone")
	}
	return r.path, nil
}

// Abort ends the capture and discards the file.
func (r *Recorder) Abort() {
	r.cmd.Process.Kill()
	r.cmd.Wait()
	os.Remove(r.path)
}

// ExtractAudio pulls the audio track out of a video file into a temporary
// mono MP3 so video uploads shrink to just the speech. Returns the path to
// the extracted file; the caller owns it.
func ExtractAudio(videoPath string) (string, error) {
	out, err := os.CreateTemp("", "pitch-audio-*.mp3")
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	outPath := out.Name()
	out.Close()

	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ar", strconv.Itoa(captureSampleRate),
		"-ac", strconv.Itoa(captureChannels),
		"-codec:a", "libmp3lame", "-b:a", "128k",
		outPath,
	}

	cmd := exec.Command("ffmpeg", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(outPath)
		return "", fmt.Errorf("ffmpeg error: %w\nOutput: %s", err, string(output))
	}

	return outPath, nil
}

// IsVideo reports whether the staged file looks like a video container.
func IsVideo(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".mp4" || ext == ".webm"
}

// CheckFFmpeg checks that ffmpeg is installed.
func CheckFFmpeg() error {
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		return fmt.Errorf("ffmpeg not found: %w\n\n%s", err, InstallHelp())
	}
	return nil
}

// CheckFFprobe checks that ffprobe is installed.
func CheckFFprobe() error {
	if err := exec.Command("ffprobe", "-version").Run(); err != nil {
		return fmt.Errorf("ffprobe not found: %w\n\n%s", err, InstallHelp())
	}
	return nil
}

// InstallHelp returns platform-specific FFmpeg installation instructions.
func InstallHelp() string {
	switch runtime.GOOS {
	case "darwin":
		return `Install FFmpeg on macOS:
  brew install ffmpeg

Or download from: https://ffmpeg.org/download.html`
	case "linux":
		return `Install FFmpeg on Linux:
  Ubuntu/Debian: sudo apt install ffmpeg
  Fedora:        sudo dnf install ffmpeg
  Arch:          sudo pacman -S ffmpeg

Or download from: https://ffmpeg.org/download.html`
	case "windows":
		return `Install FFmpeg on Windows:
  winget install ffmpeg

Or download from: https://ffmpeg.org/download.html
Then add to PATH.`
	default:
		return `Please install FFmpeg from: https://ffmpeg.org/download.html`
	}
}
