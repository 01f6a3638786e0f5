// Package report exports analysis results as a markdown document with any
// narration audio decoded alongside it.
package report

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bradleyyang/pitch-perfect-v2/pitch"
)

// Save writes the analysis report into dir and returns the markdown path.
// Narration tracks arrive base64-encoded from the service; they are decoded
// to sibling .mp3 files. A failed audio decode does not fail the report.
func Save(dir, title string, res pitch.Result, improved *pitch.ImprovedPitch) (string, error) {
	base := slugify(title)
	if base == "" {
		base = "pitch-report"
	}
	base = fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405"))

	path := filepath.Join(dir, base+".md")
	doc := render(title, res, improved)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	if res.Audio != nil && res.Audio.VerdictAudio != "" {
		writeAudio(filepath.Join(dir, base+"-verdict.mp3"), res.Audio.VerdictAudio)
	}
	if improved != nil && improved.ImprovedAudio != "" {
		writeAudio(filepath.Join(dir, base+"-improved.mp3"), improved.ImprovedAudio)
	}

	return path, nil
}

func render(title string, res pitch.Result, improved *pitch.ImprovedPitch) string {
	var b strings.Builder

	if strings.TrimSpace(title) == "" {
		title = "Pitch Analysis"
	}
	fmt.Fprintf(&b, "# %s\n\n", strings.TrimSpace(title))
	fmt.Fprintf(&b, "_Generated %s_\n\n", time.Now().Format("January 2, 2006 15:04"))

	if audio := res.Audio; audio != nil {
		b.WriteString("## Verdict\n\n")
		b.WriteString(audio.Insights.OverallVerdict + "\n\n")

		b.WriteString("## Scores\n\n")
		b.WriteString("| Axis | Score | Insight | Suggested action |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, axis := range audio.Insights.Axes() {
			name := axis.Name
			if name == "Filler Words" {
				name = fmt.Sprintf("Filler Words (%d found)", audio.Insights.FillerWords.Count)
			}
			fmt.Fprintf(&b, "| %s | %d/5 | %s | %s |\n",
				name, axis.Score, tableCell(axis.Insight), tableCell(axis.Action))
		}
		b.WriteString("\n")

		b.WriteString("## Delivery\n\n")
		fmt.Fprintf(&b, "- Average pace: %.0f syllables/min\n", pitch.AverageSPM(audio.WordAnalysis))
		dist := pitch.SpeedDistribution(audio.WordAnalysis)
		for _, label := range pitch.SpeedLabels {
			fmt.Fprintf(&b, "- %s words: %d\n", label, dist[label])
		}
		b.WriteString("\n")

		b.WriteString("## Transcript\n\n")
		b.WriteString(audio.Transcription + "\n\n")
	}

	if slides := res.Slides; slides != nil {
		fmt.Fprintf(&b, "## Slides (%d pages)\n\n", slides.TotalPages)
		b.WriteString(slides.Summary + "\n\n")
		for _, page := range slides.Pages {
			fmt.Fprintf(&b, "### Page %d\n\n", page.PageNumber)
			text := strings.TrimSpace(page.Text)
			if text == "" {
				text = "_(no extractable text)_"
			}
			b.WriteString(text + "\n\n")
		}
	}

	if improved != nil {
		b.WriteString("## Improved pitch\n\n")
		b.WriteString(improved.ImprovedText + "\n")
	}

	return b.String()
}

func writeAudio(path, encoded string) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return
	}
	os.WriteFile(path, data, 0o644)
}

func tableCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
