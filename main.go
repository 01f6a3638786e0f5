package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bradleyyang/pitch-perfect-v2/config"
	"github.com/bradleyyang/pitch-perfect-v2/pitch"
	"github.com/bradleyyang/pitch-perfect-v2/theme"
	"github.com/bradleyyang/pitch-perfect-v2/tui"
)

// Build info - set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version information")
	shortVersionFlag := flag.Bool("v", false, "Print version information (short)")
	flag.Parse()

	if *versionFlag || *shortVersionFlag {
		fmt.Printf("pitch-perfect %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		fmt.Printf("  go:     %s\n", runtime.Version())
		fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	// Load .env file if it exists (won't error if missing)
	_ = godotenv.Load()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		fmt.Println(tui.ErrorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Println(tui.ErrorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}

	themes := theme.NewStore(cfg, cfgPath)

	clientOpts := []pitch.ClientOption{
		pitch.WithBaseURL(cfg.APIURL),
		pitch.WithTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second),
	}
	if cfg.DebugLog != "" {
		// Log to a file; stdout belongs to the TUI.
		zc := zap.NewDevelopmentConfig()
		zc.OutputPaths = []string{cfg.DebugLog}
		zc.ErrorOutputPaths = []string{cfg.DebugLog}
		if logger, err := zc.Build(); err == nil {
			defer logger.Sync()
			clientOpts = append(clientOpts, pitch.WithLogger(logger.Sugar()))
		}
	}
	client := pitch.NewClient(clientOpts...)

	fmt.Println(tui.Header())

	checkService(client, cfg.APIURL)

	for {
		if !runMenu(client, themes) {
			break
		}
	}

	fmt.Println(tui.SubtitleStyle.Render("\nThanks for using Pitch Perfect!"))
}

// checkService probes the analysis service once at startup. An unreachable
// service is a warning, not a hard failure: the user may start it later.
func checkService(client *pitch.Client, baseURL string) {
	var pingErr error
	err := spinner.New().
		Title("Checking the analysis service...").
		Action(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			pingErr = client.Ping(ctx)
		}).
		Run()

	if err != nil || pingErr != nil {
		fmt.Println(tui.ErrorStyle.Render("Warning: could not reach the analysis service at " + baseURL))
		fmt.Println(tui.MutedStyle.Render("Analysis will fail until the service is running."))
	}
}

func runMenu(client *pitch.Client, themes *theme.Store) bool {
	var choice string
	menu := huh.NewSelect[string]().
		Title("What would you like to do?").
		Options(
			huh.NewOption("Analyze a pitch", "analyze"),
			huh.NewOption(fmt.Sprintf("Toggle theme (current: %s)", themes.Name()), "theme"),
			huh.NewOption("Exit", "exit"),
		).
		Value(&choice)

	err := huh.NewForm(huh.NewGroup(menu)).
		WithTheme(huh.ThemeCatppuccin()).
		Run()

	if err != nil {
		return false
	}

	switch choice {
	case "analyze":
		return runAnalyzeWorkflow(client)
	case "theme":
		if err := themes.Toggle(); err != nil {
			fmt.Println(tui.ErrorStyle.Render("Could not save theme preference: " + err.Error()))
		} else {
			fmt.Println(tui.SuccessStyle.Render("Switched to the " + themes.Name() + " theme."))
		}
		return true
	default:
		return false
	}
}
