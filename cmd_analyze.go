package main

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/bradleyyang/pitch-perfect-v2/media"
	"github.com/bradleyyang/pitch-perfect-v2/pitch"
	"github.com/bradleyyang/pitch-perfect-v2/tui"
)

// runAnalyzeWorkflow launches the analysis wizard and reports whether the
// menu loop should continue.
func runAnalyzeWorkflow(client *pitch.Client) bool {
	// Recording and video extraction need ffmpeg; warn up front rather
	// than failing mid-wizard.
	if err := media.CheckFFmpeg(); err != nil {
		fmt.Println(tui.MutedStyle.Render("Note: " + err.Error()))
		fmt.Println(tui.MutedStyle.Render(media.InstallHelp()))
	}

	for {
		backToMenu, reportPath, err := tui.RunWizard(client)
		if err != nil {
			fmt.Println(tui.ErrorStyle.Render("Error: " + err.Error()))
			return true
		}

		if reportPath != "" {
			fmt.Println(tui.SuccessStyle.Render("Report saved to " + reportPath))
		}
		if backToMenu {
			return true
		}

		switch askWhatNext() {
		case "another":
			continue
		case "menu":
			return true
		default:
			return false
		}
	}
}

func askWhatNext() string {
	var choice string
	selectNext := huh.NewSelect[string]().
		Title("What next?").
		Options(
			huh.NewOption("Analyze another pitch", "another"),
			huh.NewOption("Back to menu", "menu"),
			huh.NewOption("Exit", "exit"),
		).
		Value(&choice)

	err := huh.NewForm(huh.NewGroup(selectNext)).
		WithTheme(huh.ThemeCatppuccin()).
		Run()

	if err != nil {
		return "exit"
	}

	return choice
}
