// Package media handles local media intake for the wizard: validating
// candidate files against the supported audio/video and PDF sets, holding
// the single-occupancy staged-file slots, probing files with ffprobe, and
// capturing microphone audio through ffmpeg.
package media

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Kind classifies a staged file into its upload slot.
type Kind string

const (
	// KindAudio covers audio and video recordings of the pitch
	KindAudio Kind = "audio"

	// KindSlides covers slide-deck PDFs
	KindSlides Kind = "slides"
)

// MIME types accepted for the audio/video slot.
var audioMIMEs = map[string]bool{
	"audio/mpeg": true,
	"audio/mp3":  true,
	"audio/wav":  true,
	"video/mp4":  true,
	"audio/webm": true,
	"video/webm": true,
}

// Extensions accepted for the audio/video slot.
var audioExts = map[string]bool{
	".mp3":  true,
	".mp4":  true,
	".wav":  true,
	".webm": true,
}

// KindForMIME classifies a declared MIME type.
func KindForMIME(mimeType string) (Kind, bool) {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	switch {
	case audioMIMEs[mimeType]:
		return KindAudio, true
	case mimeType == "application/pdf":
		return KindSlides, true
	}
	return "", false
}

// KindForName classifies a file by its extension.
func KindForName(name string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case audioExts[ext]:
		return KindAudio, true
	case ext == ".pdf":
		return KindSlides, true
	}
	return "", false
}

// DetectKind classifies a candidate by declared MIME type first, then by
// filename extension. Files matching neither are rejected.
func DetectKind(name, mimeType string) (Kind, bool) {
	if mimeType != "" {
		if kind, ok := KindForMIME(mimeType); ok {
			return kind, true
		}
	}
	return KindForName(name)
}

// SniffMIME detects a file's content type from its first 512 bytes.
// Returns "" when the file cannot be read; unknown content comes back as
// application/octet-stream, which DetectKind ignores in favor of the
// extension.
func SniffMIME(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return ""
	}
	return http.DetectContentType(buf[:n])
}

// StagedFile is a validated local file waiting for upload.
type StagedFile struct {
	ID   string
	Path string
	Name string
	Size int64
	Kind Kind

	// Temp marks files owned by this process (recordings, extracted audio)
	// that must be deleted when replaced or when the session resets.
	Temp bool
}

// Stage holds at most one audio/video file and one PDF at a time.
type Stage struct {
	audio  *StagedFile
	slides *StagedFile
}

// NewStage returns an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// Add validates and stages a candidate file. Invalid candidates are dropped
// and (nil, false) is returned with no state change. A valid candidate
// replaces any staged file of the same kind, releasing the replaced file if
// this process owned it.
func (s *Stage) Add(path string) (*StagedFile, bool) {
	return s.add(path, "", false)
}

// AddWithMIME stages a candidate whose content type is already known, such
// as a sniffed or declared MIME type. The type takes precedence over the
// filename extension; an unrecognized type falls back to the extension.
func (s *Stage) AddWithMIME(path, mimeType string) (*StagedFile, bool) {
	return s.add(path, mimeType, false)
}

// AddTemp stages a process-owned file, such as a fresh recording. The file
// is deleted when it is later replaced or the stage resets.
func (s *Stage) AddTemp(path string) (*StagedFile, bool) {
	return s.add(path, "", true)
}

func (s *Stage) add(path, mimeType string, temp bool) (*StagedFile, bool) {
	kind, ok := DetectKind(filepath.Base(path), mimeType)
	if !ok {
		return nil, false
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, false
	}

	f := &StagedFile{
		ID:   uuid.NewString(),
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
		Kind: kind,
		Temp: temp,
	}

	switch kind {
	case KindAudio:
		release(s.audio)
		s.audio = f
	case KindSlides:
		release(s.slides)
		s.slides = f
	}
	return f, true
}

// Audio returns the staged audio/video file, or nil.
func (s *Stage) Audio() *StagedFile { return s.audio }

// Slides returns the staged PDF, or nil.
func (s *Stage) Slides() *StagedFile { return s.slides }

// HasAudio reports whether the audio/video slot is occupied.
func (s *Stage) HasAudio() bool { return s.audio != nil }

// HasSlides reports whether the PDF slot is occupied.
func (s *Stage) HasSlides() bool { return s.slides != nil }

// Reset empties both slots, deleting any process-owned files.
func (s *Stage) Reset() {
	release(s.audio)
	release(s.slides)
	s.audio = nil
	s.slides = nil
}

func release(f *StagedFile) {
	if f != nil && f.Temp {
		os.Remove(f.Path)
	}
}
