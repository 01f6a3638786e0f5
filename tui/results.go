package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/bradleyyang/pitch-perfect-v2/media"
	"github.com/bradleyyang/pitch-perfect-v2/pitch"
	"github.com/bradleyyang/pitch-perfect-v2/report"
)

// visibleTabs returns the tab labels applicable to this result. Audio-only
// runs have no Slides tab and slides-only runs collapse to Summary + Slides.
func (m Model) visibleTabs() []string {
	var tabs []string
	tabs = append(tabs, "Summary")
	if m.result.Audio != nil {
		tabs = append(tabs, "Transcript", "Delivery")
	}
	if m.result.Slides != nil {
		tabs = append(tabs, "Slides")
	}
	if m.result.Audio != nil {
		tabs = append(tabs, "Improve")
	}
	return tabs
}

func (m Model) handleResultsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tabs := m.visibleTabs()

	switch msg.String() {
	case "tab", "l", "right":
		m.resultTab = (m.resultTab + 1) % len(tabs)
		return m.syncResultView(), nil
	case "shift+tab", "h", "left":
		m.resultTab = (m.resultTab + len(tabs) - 1) % len(tabs)
		return m.syncResultView(), nil
	case "i":
		if m.result.Audio != nil && m.stage.HasAudio() && m.improved == nil && !m.improving {
			m.improving = true
			m.errorMessage = ""
			m = m.syncResultView()
			return m, m.generateImproved()
		}
		return m, nil
	case "s":
		return m, m.saveReport()
	case "n":
		// The fresh spinner has a new ID, so the old tick loop dies and a
		// new one must be started.
		fresh := m.reset()
		return fresh, fresh.spinner.Tick
	case "q":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.resultView, cmd = m.resultView.Update(msg)
	return m, cmd
}

func (m Model) generateImproved() tea.Cmd {
	client := m.client
	audio := m.result.Audio
	path := m.stage.Audio().Path
	return func() tea.Msg {
		uploadPath := path
		if media.IsVideo(path) {
			if extracted, err := media.ExtractAudio(path); err == nil {
				uploadPath = extracted
				defer os.Remove(extracted)
			}
		}
		improved, err := client.GenerateImprovedPitch(context.Background(), uploadPath, audio.Transcription, audio.Insights)
		return improvedMsg{improved: improved, err: err}
	}
}

func (m Model) saveReport() tea.Cmd {
	title := strings.TrimSpace(m.titleInput.Value())
	result := m.result
	improved := m.improved
	return func() tea.Msg {
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		path, err := report.Save(dir, title, result, improved)
		return reportSavedMsg{path: path, err: err}
	}
}

// syncResultView sizes the content viewport and fills it with the active tab.
func (m Model) syncResultView() Model {
	w := m.width - 8
	if w < 20 {
		w = 20
	}
	h := m.height - 14
	if h < 5 {
		h = 5
	}
	m.resultView.Width = w
	m.resultView.Height = h
	m.resultView.SetContent(m.tabContent(w))
	m.resultView.GotoTop()
	return m
}

func (m Model) tabContent(width int) string {
	tabs := m.visibleTabs()
	if m.resultTab >= len(tabs) {
		return ""
	}
	switch tabs[m.resultTab] {
	case "Summary":
		return m.summaryContent(width)
	case "Transcript":
		return m.transcriptContent(width)
	case "Delivery":
		return m.deliveryContent(width)
	case "Slides":
		return m.slidesContent(width)
	case "Improve":
		return m.improveContent(width)
	}
	return ""
}

func (m Model) summaryContent(width int) string {
	var b strings.Builder

	if audio := m.result.Audio; audio != nil {
		b.WriteString(SubtitleStyle.Render("Verdict") + "\n")
		b.WriteString(wordwrap.String(BodyStyle.Render(audio.Insights.OverallVerdict), width) + "\n\n")

		for _, axis := range audio.Insights.Axes() {
			name := axis.Name
			if name == "Filler Words" {
				name = fmt.Sprintf("Filler Words (%d)", audio.Insights.FillerWords.Count)
			}
			b.WriteString(BodyStyle.Bold(true).Render(fmt.Sprintf("%-18s", name)))
			b.WriteString(ScoreGauge(axis.Score) + "\n")
			if axis.Insight != "" {
				b.WriteString(MutedStyle.Render(wordwrap.String("  "+axis.Insight, width)) + "\n")
			}
			if axis.Action != "" {
				b.WriteString(InfoStyle.Render(wordwrap.String("  → "+axis.Action, width)) + "\n")
			}
			b.WriteString("\n")
		}
	}

	if slides := m.result.Slides; slides != nil {
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Slides (%d pages)", slides.TotalPages)) + "\n")
		b.WriteString(wordwrap.String(BodyStyle.Render(slides.Summary), width) + "\n")
	}

	return b.String()
}

func (m Model) transcriptContent(width int) string {
	audio := m.result.Audio
	if audio == nil {
		return ""
	}

	legend := make([]string, 0, len(pitch.SpeedLabels))
	for _, label := range pitch.SpeedLabels {
		legend = append(legend, SpeedStyle(label).Render("■ "+label))
	}

	var words strings.Builder
	if len(audio.WordAnalysis) == 0 {
		words.WriteString(BodyStyle.Render(audio.Transcription))
	} else {
		for i, w := range audio.WordAnalysis {
			if i > 0 {
				words.WriteString(" ")
			}
			words.WriteString(SpeedStyle(w.Speed).Render(w.Word))
		}
	}

	return strings.Join(legend, "  ") + "\n\n" + wordwrap.String(words.String(), width)
}

func (m Model) deliveryContent(width int) string {
	audio := m.result.Audio
	if audio == nil {
		return ""
	}

	var b strings.Builder

	dist := pitch.SpeedDistribution(audio.WordAnalysis)
	max := 0
	for _, n := range dist {
		if n > max {
			max = n
		}
	}

	b.WriteString(SubtitleStyle.Render("Speed distribution") + "\n")
	for _, label := range pitch.SpeedLabels {
		b.WriteString(SpeedStyle(label).Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(Bar(dist[label], max, 30))
		b.WriteString(MutedStyle.Render(fmt.Sprintf(" %d", dist[label])) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(BodyStyle.Render(fmt.Sprintf("Average pace: %.0f syllables/min", pitch.AverageSPM(audio.WordAnalysis))) + "\n\n")

	sparkWidth := width - 4
	if sparkWidth > 60 {
		sparkWidth = 60
	}

	if len(audio.Timestamps) > 0 {
		s := pitch.SummarizeSeries(audio.Timestamps)
		b.WriteString(SubtitleStyle.Render("Pace over time") + "\n")
		b.WriteString(InfoStyle.Render(Sparkline(pitch.BucketSeries(audio.Timestamps, sparkWidth))) + "\n")
		b.WriteString(MutedStyle.Render(fmt.Sprintf("min %.0f  avg %.0f  max %.0f syl/min", s.Min, s.Avg, s.Max)) + "\n\n")
	}

	if len(audio.Loudness) > 0 {
		s := pitch.SummarizeSeries(audio.Loudness)
		b.WriteString(SubtitleStyle.Render("Loudness over time") + "\n")
		b.WriteString(SuccessStyle.Render(Sparkline(pitch.BucketSeries(audio.Loudness, sparkWidth))) + "\n")
		b.WriteString(MutedStyle.Render(fmt.Sprintf("min %.1f  avg %.1f  max %.1f dB", s.Min, s.Avg, s.Max)) + "\n")
	}

	return b.String()
}

func (m Model) slidesContent(width int) string {
	slides := m.result.Slides
	if slides == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(SubtitleStyle.Render("Deck summary") + "\n")
	b.WriteString(wordwrap.String(BodyStyle.Render(slides.Summary), width) + "\n\n")

	for _, page := range slides.Pages {
		b.WriteString(BodyStyle.Bold(true).Render(fmt.Sprintf("Page %d", page.PageNumber)) + "\n")
		text := strings.TrimSpace(page.Text)
		if text == "" {
			text = "(no extractable text)"
		}
		b.WriteString(MutedStyle.Render(wordwrap.String(text, width)) + "\n\n")
	}

	return b.String()
}

func (m Model) improveContent(width int) string {
	if m.improving {
		return m.spinner.View() + " " + BodyStyle.Render("Rewriting your pitch...")
	}
	if m.improved == nil {
		return BodyStyle.Render("Press i to generate an improved version of your pitch script.")
	}

	var b strings.Builder
	b.WriteString(SubtitleStyle.Render("Improved pitch") + "\n")
	b.WriteString(wordwrap.String(BodyStyle.Render(m.improved.ImprovedText), width) + "\n")
	if m.improved.ImprovedAudio != "" {
		b.WriteString("\n" + MutedStyle.Render("Narration audio is included when you save the report.") + "\n")
	}
	return b.String()
}

func (m Model) renderResults() string {
	tabs := m.visibleTabs()

	var tabBar []string
	for i, name := range tabs {
		style := MutedStyle.Padding(0, 1)
		if i == m.resultTab {
			style = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true).
				Padding(0, 1)
		}
		tabBar = append(tabBar, style.Render(name))
	}

	title := ""
	if t := strings.TrimSpace(m.titleInput.Value()); t != "" {
		title = TitleStyle.Render(t) + "\n"
	}

	banner := ""
	if m.errorMessage != "" {
		banner = ErrorBannerStyle.Render(m.errorMessage) + "\n"
	} else if m.reportPath != "" {
		banner = SuccessStyle.Render("Report saved to "+m.reportPath) + "\n"
	}

	return title +
		strings.Join(tabBar, " ") + "\n" +
		BoxStyle.Render(m.resultView.View()) + "\n" +
		banner
}
