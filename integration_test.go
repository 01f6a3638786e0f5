//go:build integration
// +build integration

package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/bradleyyang/pitch-perfect-v2/media"
	"github.com/bradleyyang/pitch-perfect-v2/pitch"
)

// TestIntegration_AudioAnalysis runs the full audio pipeline against a live
// analysis service. Set PITCH_SERVICE_URL and TEST_AUDIO_PATH to enable.
func TestIntegration_AudioAnalysis(t *testing.T) {
	serviceURL := os.Getenv("PITCH_SERVICE_URL")
	if serviceURL == "" {
		t.Skip("PITCH_SERVICE_URL not set, skipping integration test")
	}
	audioPath := os.Getenv("TEST_AUDIO_PATH")
	if audioPath == "" {
		t.Skip("TEST_AUDIO_PATH not set, skipping integration test")
	}
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		t.Skipf("Test audio not found at %s", audioPath)
	}

	client := pitch.NewClient(pitch.WithBaseURL(serviceURL))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		t.Fatalf("service unreachable: %v", err)
	}

	uploadPath := audioPath
	if media.IsVideo(audioPath) {
		if err := media.CheckFFmpeg(); err != nil {
			t.Skipf("ffmpeg not available: %v", err)
		}
		extracted, err := media.ExtractAudio(audioPath)
		if err != nil {
			t.Fatalf("extracting audio: %v", err)
		}
		defer os.Remove(extracted)
		uploadPath = extracted
	}

	analysis, err := client.AnalyzeAudio(ctx, uploadPath)
	if err != nil {
		t.Fatalf("AnalyzeAudio: %v", err)
	}

	if analysis.Transcription == "" {
		t.Error("empty transcription")
	}
	if len(analysis.WordAnalysis) == 0 {
		t.Error("no word analysis returned")
	}
	for _, w := range analysis.WordAnalysis {
		found := false
		for _, label := range pitch.SpeedLabels {
			if w.Speed == label {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("word %q has unknown speed label %q", w.Word, w.Speed)
		}
	}

	improved, err := client.GenerateImprovedPitch(ctx, uploadPath, analysis.Transcription, analysis.Insights)
	if err != nil {
		t.Fatalf("GenerateImprovedPitch: %v", err)
	}
	if improved.ImprovedText == "" {
		t.Error("empty improved pitch")
	}
}

// TestIntegration_PDFAnalysis exercises the slide-deck endpoint.
func TestIntegration_PDFAnalysis(t *testing.T) {
	serviceURL := os.Getenv("PITCH_SERVICE_URL")
	if serviceURL == "" {
		t.Skip("PITCH_SERVICE_URL not set, skipping integration test")
	}
	pdfPath := os.Getenv("TEST_PDF_PATH")
	if pdfPath == "" {
		t.Skip("TEST_PDF_PATH not set, skipping integration test")
	}

	pages, err := media.ProbePDF(pdfPath)
	if err != nil {
		t.Fatalf("probing PDF: %v", err)
	}

	client := pitch.NewClient(pitch.WithBaseURL(serviceURL))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	analysis, err := client.AnalyzePDF(ctx, pdfPath)
	if err != nil {
		t.Fatalf("AnalyzePDF: %v", err)
	}

	if analysis.TotalPages != pages {
		t.Errorf("TotalPages = %d, local probe found %d", analysis.TotalPages, pages)
	}
	if analysis.Summary == "" {
		t.Error("empty deck summary")
	}
}
