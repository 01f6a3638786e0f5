// Package tui implements the terminal wizard that walks a user through an
// analysis session and renders the returned results.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Adaptive pairs react to the theme store's dark/light flag
// through the lipgloss renderer.
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"} // Violet
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"} // Sky blue
	ColorAccent    = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"} // Amber

	ColorSuccess = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"} // Emerald
	ColorWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"} // Amber
	ColorError   = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"} // Red
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#6366F1", Dark: "#818CF8"} // Indigo

	ColorText   = lipgloss.AdaptiveColor{Light: "#1E293B", Dark: "#F1F5F9"}
	ColorSubtle = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#64748B"}
	ColorBorder = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#334155"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			MarginBottom(1)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)

	ErrorBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorError).
				Foreground(ColorError).
				Padding(0, 2)
)

// Application header
var logoASCII = `
  ___ _ _      _      ___          __        _
 | _ (_) |_ __| |_   | _ \___ _ _ / _|___ __| |_
 |  _/ | _/ _| ' \   |  _/ -_) '_|  _/ -_) _|  _|
 |_| |_|\__\__|_||_| |_| \___|_| |_| \___\__|\__|
`

// Header returns the styled application banner.
func Header() string {
	return lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Render(logoASCII)
}

// speedColors tint transcript words by their speed label.
var speedColors = map[string]lipgloss.AdaptiveColor{
	"Slow":      ColorInfo,
	"Medium":    ColorSuccess,
	"Fast":      ColorWarning,
	"Very Fast": ColorError,
}

// SpeedStyle returns the style for a word with the given speed label.
func SpeedStyle(speed string) lipgloss.Style {
	if c, ok := speedColors[speed]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return BodyStyle
}

// ScoreGauge renders an n-of-5 insight score as a filled bar.
func ScoreGauge(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}

	filled := lipgloss.NewStyle().Foreground(ColorPrimary).Render(strings.Repeat("█", score*2))
	empty := lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("░", (5-score)*2))
	label := MutedStyle.Render(fmt.Sprintf(" %d/5", score))
	return filled + empty + label
}

// Bar renders a horizontal count bar scaled against max.
func Bar(count, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := count * width / max
	if filled > width {
		filled = width
	}
	return lipgloss.NewStyle().Foreground(ColorSecondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("░", width-filled))
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a value series as a row of block characters.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for _, v := range values {
		i := 0
		if max > min {
			i = int((v - min) / (max - min) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[i])
	}
	return lipgloss.NewStyle().Foreground(ColorSecondary).Render(b.String())
}

// ProgressBar renders the analysis progress as a percentage bar.
func ProgressBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	bar := lipgloss.NewStyle().Foreground(ColorPrimary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("░", width-filled))
	return bar + MutedStyle.Render(fmt.Sprintf(" %3.0f%%", percent))
}

// StepIndicator renders the numbered wizard progress line.
func StepIndicator(current, total int, labels []string) string {
	var parts []string
	for i, label := range labels {
		var icon string
		var style lipgloss.Style

		switch {
		case i+1 < current:
			icon = "[x]"
			style = lipgloss.NewStyle().Foreground(ColorSuccess)
		case i+1 == current:
			icon = "[>]"
			style = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
		default:
			icon = "[ ]"
			style = lipgloss.NewStyle().Foreground(ColorMuted)
		}

		parts = append(parts, style.Render(icon+" "+label))
		if i < len(labels)-1 {
			parts = append(parts, MutedStyle.Render("--"))
		}
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	count := MutedStyle.Render(fmt.Sprintf("  Step %d of %d", current, total))
	return line + count
}
