package report

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bradleyyang/pitch-perfect-v2/pitch"
)

func sampleResult() pitch.Result {
	return pitch.Result{
		Audio: &pitch.AudioAnalysis{
			Transcription: "hello world this is my pitch",
			WordAnalysis: []pitch.WordAnalysis{
				{Word: "hello", Speed: pitch.SpeedMedium, SyllablesPerMinute: 200},
				{Word: "world", Speed: pitch.SpeedFast, SyllablesPerMinute: 280},
			},
			Insights: pitch.Insights{
				OverallVerdict: "A solid pitch with room to slow down.",
				Clarity:        pitch.AxisScore{Score: 4, Insight: "Clear articulation", Action: "Keep it up"},
				FillerWords:    pitch.FillerWords{AxisScore: pitch.AxisScore{Score: 3}, Count: 7},
			},
			VerdictAudio: base64.StdEncoding.EncodeToString([]byte("mp3data")),
		},
		Slides: &pitch.PDFAnalysis{
			TotalPages: 2,
			Pages: []pitch.Page{
				{PageNumber: 1, Text: "Problem"},
				{PageNumber: 2, Text: ""},
			},
			Summary: "Two slides covering the problem.",
		},
	}
}

func TestSaveWritesMarkdownAndAudio(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, "My Seed Pitch", sampleResult(), &pitch.ImprovedPitch{
		ImprovedText:  "A tighter version of the pitch.",
		ImprovedAudio: base64.StdEncoding.EncodeToString([]byte("improvedmp3")),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), "my-seed-pitch-") {
		t.Errorf("unexpected report name %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	doc := string(data)

	for _, want := range []string{
		"# My Seed Pitch",
		"A solid pitch with room to slow down.",
		"Filler Words (7 found)",
		"Average pace: 240 syllables/min",
		"## Slides (2 pages)",
		"_(no extractable text)_",
		"A tighter version of the pitch.",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("report missing %q", want)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var mp3s int
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".mp3") {
			mp3s++
		}
	}
	if mp3s != 2 {
		t.Errorf("expected 2 decoded audio files, got %d", mp3s)
	}
}

func TestSaveDefaultsTitle(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, "  ", pitch.Result{Slides: &pitch.PDFAnalysis{TotalPages: 1, Summary: "One page."}}, nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "pitch-report-") {
		t.Errorf("unexpected report name %q", filepath.Base(path))
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "# Pitch Analysis") {
		t.Error("default title missing")
	}
}

func TestBadAudioDoesNotFailSave(t *testing.T) {
	dir := t.TempDir()
	res := sampleResult()
	res.Audio.VerdictAudio = "not!!base64"

	if _, err := Save(dir, "x", res, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".mp3") {
			t.Errorf("unexpected audio file %s", e.Name())
		}
	}
}
