package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bradleyyang/pitch-perfect-v2/media"
	"github.com/bradleyyang/pitch-perfect-v2/pitch"
)

// progressTickInterval is how often the simulated progress advances while a
// request is in flight.
const progressTickInterval = 150 * time.Millisecond

// Model is the Bubble Tea model for the analysis wizard. It owns all step,
// file and submission state; result views are derived from it.
type Model struct {
	step         Step
	analysisType AnalysisType
	audioMethod  AudioMethod

	// Menu cursors
	typeIndex   int
	methodIndex int

	// UI components
	filepicker  filepicker.Model
	titleInput  textinput.Model
	descInput   textinput.Model
	spinner     spinner.Model
	focusedCtx  int // 0 = title, 1 = description

	// Staged inputs
	stage      *media.Stage
	slidePages int
	audioInfo  *media.AudioInfo

	// Recording state
	recorder  *media.Recorder
	recording bool

	// Submission state
	isAnalyzing    bool
	complete       bool
	progress       float64
	progressLabel  string
	completedSteps int
	totalSteps     int

	// Results
	resultView   viewport.Model
	result       pitch.Result
	improved     *pitch.ImprovedPitch
	improving    bool
	resultTab    int
	reportPath   string
	errorMessage string

	client *pitch.Client

	width  int
	height int

	quitting   bool
	backToMenu bool

	// randStep draws the next simulated progress increment; swappable so
	// tests are deterministic.
	randStep func() float64
}

// Messages

type progressTickMsg struct{}

type audioDoneMsg struct {
	analysis *pitch.AudioAnalysis
	err      error
}

type pdfDoneMsg struct {
	analysis *pitch.PDFAnalysis
	err      error
}

type recordingStartedMsg struct {
	rec *media.Recorder
	err error
}

type recordingStoppedMsg struct {
	path string
	err  error
}

type improvedMsg struct {
	improved *pitch.ImprovedPitch
	err      error
}

type reportSavedMsg struct {
	path string
	err  error
}

// Menu options

var typeOptions = []struct {
	name  string
	value AnalysisType
	desc  string
}{
	{"Speech only", TypeSpeech, "Analyze a recording of your pitch"},
	{"Slides only", TypeSlides, "Analyze your deck PDF"},
	{"Speech + slides", TypeBoth, "Analyze both together"},
}

var methodOptions = []struct {
	name  string
	value AudioMethod
	desc  string
}{
	{"Upload a file", MethodUpload, "Pick an existing recording (.mp3 .mp4 .wav .webm)"},
	{"Record now", MethodRecord, "Capture from your microphone"},
}

// NewModel creates the wizard at its initial step.
func NewModel(client *pitch.Client) Model {
	fp := filepicker.New()
	fp.ShowHidden = false
	fp.ShowSize = true
	fp.Height = 12
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	title := textinput.New()
	title.Placeholder = "My seed round pitch"
	title.CharLimit = 120
	title.Width = 50

	desc := textinput.New()
	desc.Placeholder = "Optional notes about this run"
	desc.CharLimit = 280
	desc.Width = 50

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		step:       StepType,
		filepicker: fp,
		titleInput: title,
		descInput:  desc,
		spinner:    s,
		stage:      media.NewStage(),
		client:     client,
		width:      80,
		height:     24,
		randStep:   func() float64 { return rand.Float64() * 3 },
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.filepicker.Init())
}

// canProceed reports whether the current step has the data it needs.
func (m Model) canProceed() bool {
	switch m.step {
	case StepType:
		return m.analysisType != ""
	case StepAudioMethod:
		return m.audioMethod != ""
	case StepAudioUpload, StepAudioRecord:
		return m.stage.HasAudio()
	case StepSlides:
		return m.stage.HasSlides()
	case StepContext:
		return true
	}
	return false
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.step == StepResults {
			m = m.syncResultView()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.step != StepAnalyzing {
				m.quitting = true
				m.abortRecording()
				return m, tea.Quit
			}
			return m, nil
		case "esc":
			// Leaving a submitted analysis is not supported.
			if m.step == StepAnalyzing {
				return m, nil
			}
			return m.goBack()
		}
		return m.handleStepInput(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressTickMsg:
		if !m.isAnalyzing {
			return m, nil
		}
		target := (float64(m.completedSteps) + 0.9) / float64(m.totalSteps) * 100
		m.progress += m.randStep()
		if m.progress > target {
			m.progress = target
		}
		return m, m.tickProgress()

	case audioDoneMsg:
		if msg.err != nil {
			return m.failAnalysis(msg.err, "Audio analysis failed. Please try again.")
		}
		m.result.Audio = msg.analysis
		m.completedSteps++
		m.progress = float64(m.completedSteps) / float64(m.totalSteps) * 100
		if m.stage.HasSlides() {
			m.progressLabel = "Analyzing your slides..."
			return m, m.analyzeSlides()
		}
		return m.finishAnalysis()

	case pdfDoneMsg:
		if msg.err != nil {
			return m.failAnalysis(msg.err, "Slide analysis failed. Please try again.")
		}
		m.result.Slides = msg.analysis
		m.completedSteps++
		m.progress = float64(m.completedSteps) / float64(m.totalSteps) * 100
		return m.finishAnalysis()

	case recordingStartedMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		m.recorder = msg.rec
		m.recording = true
		m.errorMessage = ""
		return m, nil

	case recordingStoppedMsg:
		m.recording = false
		m.recorder = nil
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		// The stage owns the temp recording from here.
		if _, ok := m.stage.AddTemp(msg.path); ok {
			m.audioInfo, _ = media.ProbeAudio(msg.path)
		}
		return m, nil

	case improvedMsg:
		m.improving = false
		if msg.err != nil {
			m.errorMessage = userMessage(msg.err, "Could not generate an improved pitch. Please try again.")
			return m.syncResultView(), nil
		}
		m.improved = msg.improved
		m.errorMessage = ""
		return m.syncResultView(), nil

	case reportSavedMsg:
		if msg.err != nil {
			m.errorMessage = "Could not save report: " + msg.err.Error()
			return m, nil
		}
		m.reportPath = msg.path
		m.errorMessage = ""
		return m, nil
	}

	// Feed remaining messages to the active sub-component.
	switch m.step {
	case StepAudioUpload, StepSlides:
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)
		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			// Invalid candidates are dropped without comment.
			m = m.stageFile(path)
		}
		return m, cmd

	case StepContext:
		var cmd tea.Cmd
		if m.focusedCtx == 0 {
			m.titleInput, cmd = m.titleInput.Update(msg)
		} else {
			m.descInput, cmd = m.descInput.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// handleStepInput handles keyboard input for specific steps.
func (m Model) handleStepInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case StepType:
		switch msg.String() {
		case "up", "k":
			if m.typeIndex > 0 {
				m.typeIndex--
			}
		case "down", "j":
			if m.typeIndex < len(typeOptions)-1 {
				m.typeIndex++
			}
		case "enter":
			m.analysisType = typeOptions[m.typeIndex].value
			return m.goForward()
		}

	case StepAudioMethod:
		switch msg.String() {
		case "up", "k":
			if m.methodIndex > 0 {
				m.methodIndex--
			}
		case "down", "j":
			if m.methodIndex < len(methodOptions)-1 {
				m.methodIndex++
			}
		case "enter":
			m.audioMethod = methodOptions[m.methodIndex].value
			return m.goForward()
		}

	case StepAudioUpload, StepSlides:
		// Enter always belongs to the picker so selecting another file
		// replaces the staged one; "c" advances.
		if msg.String() == "c" && m.canProceed() {
			return m.goForward()
		}
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)
		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			m = m.stageFile(path)
		}
		return m, cmd

	case StepAudioRecord:
		switch msg.String() {
		case "r":
			if !m.recording {
				return m, m.startRecording()
			}
		case "s":
			if m.recording {
				return m, m.stopRecording()
			}
		case "enter":
			if m.recording {
				return m, m.stopRecording()
			}
			if m.canProceed() {
				return m.goForward()
			}
		}

	case StepContext:
		switch msg.String() {
		case "tab", "shift+tab":
			m.focusedCtx = 1 - m.focusedCtx
			return m.focusContext()
		case "enter":
			if m.focusedCtx == 0 {
				m.focusedCtx = 1
				return m.focusContext()
			}
			return m.submit()
		}
		var cmd tea.Cmd
		if m.focusedCtx == 0 {
			m.titleInput, cmd = m.titleInput.Update(msg)
		} else {
			m.descInput, cmd = m.descInput.Update(msg)
		}
		return m, cmd

	case StepResults:
		return m.handleResultsInput(msg)
	}

	return m, nil
}

// goForward advances along the transition table, running any entry action
// for the new step.
func (m Model) goForward() (tea.Model, tea.Cmd) {
	if !m.canProceed() {
		return m, nil
	}

	next, ok := Next(m.step, m.analysisType, m.audioMethod)
	if !ok {
		return m, nil
	}
	m.step = next

	switch next {
	case StepAudioUpload:
		m.filepicker.AllowedTypes = []string{".mp3", ".mp4", ".wav", ".webm"}
		return m, m.filepicker.Init()
	case StepSlides:
		m.filepicker.AllowedTypes = []string{".pdf"}
		return m, m.filepicker.Init()
	case StepContext:
		m.focusedCtx = 0
		return m.focusContext()
	}
	return m, nil
}

// goBack mirrors goForward using the inverse transition table.
func (m Model) goBack() (tea.Model, tea.Cmd) {
	if m.recording {
		m.abortRecording()
		m.recording = false
	}

	prev, ok := Prev(m.step, m.analysisType, m.audioMethod)
	if !ok {
		m.backToMenu = true
		return m, tea.Quit
	}
	m.step = prev

	switch prev {
	case StepAudioUpload:
		m.filepicker.AllowedTypes = []string{".mp3", ".mp4", ".wav", ".webm"}
		return m, m.filepicker.Init()
	case StepSlides:
		m.filepicker.AllowedTypes = []string{".pdf"}
		return m, m.filepicker.Init()
	}
	return m, nil
}

// stageFile validates and stages a candidate, probing PDF page counts once
// so the render loop never touches the file again. The sniffed content type
// takes precedence over the extension when it is recognized.
func (m Model) stageFile(path string) Model {
	f, ok := m.stage.AddWithMIME(path, media.SniffMIME(path))
	if !ok {
		return m
	}
	switch f.Kind {
	case media.KindSlides:
		m.slidePages = 0
		if n, err := media.ProbePDF(path); err == nil {
			m.slidePages = n
		}
	case media.KindAudio:
		// Best effort; ffprobe may be missing.
		m.audioInfo, _ = media.ProbeAudio(path)
	}
	return m
}

func (m Model) focusContext() (tea.Model, tea.Cmd) {
	if m.focusedCtx == 0 {
		m.descInput.Blur()
		return m, m.titleInput.Focus()
	}
	m.titleInput.Blur()
	return m, m.descInput.Focus()
}

// submit transitions to the analyzing step and kicks off the sequential
// upload pipeline: audio first (when present), then slides.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.step = StepAnalyzing
	m.errorMessage = ""
	m.result = pitch.Result{}
	m.improved = nil
	m.reportPath = ""
	m.progress = 0
	m.completedSteps = 0
	m.isAnalyzing = true
	m.complete = false

	m.totalSteps = 0
	if m.stage.HasAudio() {
		m.totalSteps++
	}
	if m.stage.HasSlides() {
		m.totalSteps++
	}
	if m.totalSteps == 0 {
		m.isAnalyzing = false
		m.step = StepContext
		m.errorMessage = "Nothing to analyze."
		return m, nil
	}

	var first tea.Cmd
	if m.stage.HasAudio() {
		m.progressLabel = "Analyzing your speech..."
		first = m.analyzeAudio()
	} else {
		m.progressLabel = "Analyzing your slides..."
		first = m.analyzeSlides()
	}
	return m, tea.Batch(m.tickProgress(), first)
}

func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(progressTickInterval, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

func (m Model) analyzeAudio() tea.Cmd {
	path := m.stage.Audio().Path
	client := m.client
	return func() tea.Msg {
		uploadPath := path
		if media.IsVideo(path) {
			if extracted, err := media.ExtractAudio(path); err == nil {
				uploadPath = extracted
				defer os.Remove(extracted)
			}
			// Extraction failures fall back to uploading the video as-is.
		}
		analysis, err := client.AnalyzeAudio(context.Background(), uploadPath)
		return audioDoneMsg{analysis: analysis, err: err}
	}
}

func (m Model) analyzeSlides() tea.Cmd {
	path := m.stage.Slides().Path
	client := m.client
	return func() tea.Msg {
		analysis, err := client.AnalyzePDF(context.Background(), path)
		return pdfDoneMsg{analysis: analysis, err: err}
	}
}

// failAnalysis returns the wizard to the context step with a banner. The
// staged files survive so a retry does not re-collect inputs.
func (m Model) failAnalysis(err error, fallback string) (tea.Model, tea.Cmd) {
	m.isAnalyzing = false
	m.progress = 0
	m.step = StepContext
	m.errorMessage = userMessage(err, fallback)
	m.focusedCtx = 0
	return m.focusContext()
}

func (m Model) finishAnalysis() (tea.Model, tea.Cmd) {
	m.isAnalyzing = false
	m.complete = true
	m.progress = 100
	m.step = StepResults
	m.resultTab = 0
	m = m.syncResultView()
	return m, nil
}

func (m Model) startRecording() tea.Cmd {
	return func() tea.Msg {
		rec, err := media.StartRecording()
		return recordingStartedMsg{rec: rec, err: err}
	}
}

func (m Model) stopRecording() tea.Cmd {
	rec := m.recorder
	return func() tea.Msg {
		path, err := rec.Stop()
		return recordingStoppedMsg{path: path, err: err}
	}
}

func (m *Model) abortRecording() {
	if m.recorder != nil {
		m.recorder.Abort()
		m.recorder = nil
	}
}

// userMessage maps an error to the text shown in the banner: service-reported
// messages verbatim, everything else the endpoint's generic fallback.
func userMessage(err error, fallback string) string {
	var apiErr *pitch.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return MutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder
	b.WriteString(Header())
	b.WriteString("\n")

	if m.step != StepAnalyzing && m.step != StepResults {
		b.WriteString(m.renderStepIndicator())
		b.WriteString("\n")
	}

	switch m.step {
	case StepType:
		b.WriteString(m.renderTypeSelection())
	case StepAudioMethod:
		b.WriteString(m.renderMethodSelection())
	case StepAudioUpload:
		b.WriteString(m.renderAudioUpload())
	case StepAudioRecord:
		b.WriteString(m.renderAudioRecord())
	case StepSlides:
		b.WriteString(m.renderSlidesUpload())
	case StepContext:
		b.WriteString(m.renderContext())
	case StepAnalyzing:
		b.WriteString(m.renderAnalyzing())
	case StepResults:
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderStepIndicator() string {
	atype := m.analysisType
	if atype == "" {
		// Before the first choice, show the shortest path.
		atype = TypeSlides
	}

	path := Path(atype, m.audioMethod)
	labels := make([]string, len(path))
	for i, s := range path {
		labels[i] = stepLabel(s)
	}
	return StepIndicator(StepNumber(m.step, atype, m.audioMethod), StepCount(atype), labels)
}

func stepLabel(s Step) string {
	switch s {
	case StepType:
		return "Type"
	case StepAudioMethod:
		return "Method"
	case StepAudioUpload:
		return "Audio"
	case StepAudioRecord:
		return "Record"
	case StepSlides:
		return "Slides"
	case StepContext:
		return "Details"
	}
	return ""
}

func (m Model) renderTypeSelection() string {
	title := TitleStyle.Render("What would you like to analyze?")

	var items strings.Builder
	for i, opt := range typeOptions {
		cursor := "  "
		style := BodyStyle
		if i == m.typeIndex {
			cursor = "> "
			style = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
		}
		items.WriteString(style.Render(cursor+opt.name) +
			MutedStyle.Render(" - "+opt.desc) + "\n")
	}

	return BoxStyle.Render(title + "\n\n" + items.String())
}

func (m Model) renderMethodSelection() string {
	title := TitleStyle.Render("How will you provide your audio?")

	var items strings.Builder
	for i, opt := range methodOptions {
		cursor := "  "
		style := BodyStyle
		if i == m.methodIndex {
			cursor = "> "
			style = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
		}
		items.WriteString(style.Render(cursor+opt.name) +
			MutedStyle.Render(" - "+opt.desc) + "\n")
	}

	return BoxStyle.Render(title + "\n\n" + items.String())
}

func (m Model) renderAudioUpload() string {
	title := TitleStyle.Render("Select your pitch recording")
	desc := MutedStyle.Render("Supported: .mp3 .mp4 .wav .webm")

	staged := ""
	if f := m.stage.Audio(); f != nil {
		detail := media.FormatSize(f.Size)
		if m.audioInfo != nil {
			detail += ", " + media.FormatDuration(m.audioInfo.Duration)
		}
		staged = SuccessStyle.Render("Staged: "+f.Name) +
			MutedStyle.Render(" ("+detail+")") + "\n\n"
	}

	return BoxStyle.Render(title + "\n" + desc + "\n\n" + staged + m.filepicker.View())
}

func (m Model) renderAudioRecord() string {
	title := TitleStyle.Render("Record your pitch")

	var body string
	switch {
	case m.recording:
		body = m.spinner.View() + " " + ErrorStyle.Render("Recording") +
			MutedStyle.Render(fmt.Sprintf("  %s", media.FormatDuration(m.recorder.Elapsed())))
	case m.stage.HasAudio():
		f := m.stage.Audio()
		detail := media.FormatSize(f.Size)
		if m.audioInfo != nil {
			detail += ", " + media.FormatDuration(m.audioInfo.Duration)
		}
		body = SuccessStyle.Render("Recorded: "+f.Name) +
			MutedStyle.Render(" ("+detail+")") + "\n" +
			MutedStyle.Render("Press r to record again, enter to continue")
	default:
		body = BodyStyle.Render("Press r to start recording from your microphone.")
	}

	banner := ""
	if m.errorMessage != "" {
		banner = "\n" + ErrorBannerStyle.Render(m.errorMessage)
	}

	return BoxStyle.Render(title + "\n\n" + body + banner)
}

func (m Model) renderSlidesUpload() string {
	title := TitleStyle.Render("Select your slide deck")
	desc := MutedStyle.Render("Supported: .pdf")

	staged := ""
	if f := m.stage.Slides(); f != nil {
		pages := ""
		if m.slidePages > 0 {
			pages = fmt.Sprintf(", %d pages", m.slidePages)
		}
		staged = SuccessStyle.Render("Staged: "+f.Name) +
			MutedStyle.Render(" ("+media.FormatSize(f.Size)+pages+")") + "\n\n"
	}

	return BoxStyle.Render(title + "\n" + desc + "\n\n" + staged + m.filepicker.View())
}

func (m Model) renderContext() string {
	title := TitleStyle.Render("Tell us about this pitch")

	banner := ""
	if m.errorMessage != "" {
		banner = ErrorBannerStyle.Render(m.errorMessage) + "\n\n"
	}

	var files strings.Builder
	if f := m.stage.Audio(); f != nil {
		files.WriteString(MutedStyle.Render("Audio:  "+f.Name) + "\n")
	}
	if f := m.stage.Slides(); f != nil {
		files.WriteString(MutedStyle.Render("Slides: "+f.Name) + "\n")
	}

	form := BodyStyle.Render("Title") + "\n" + m.titleInput.View() + "\n\n" +
		BodyStyle.Render("Notes") + "\n" + m.descInput.View()

	return BoxStyle.Render(title + "\n\n" + banner + files.String() + "\n" + form)
}

func (m Model) renderAnalyzing() string {
	title := TitleStyle.Render("Analyzing...")

	status := m.spinner.View() + " " + BodyStyle.Render(m.progressLabel)
	bar := ProgressBar(m.progress, 50)
	steps := MutedStyle.Render(fmt.Sprintf("Completed %d of %d", m.completedSteps, m.totalSteps))

	return BoxStyle.Render(title + "\n\n" + status + "\n\n" + bar + "\n" + steps)
}

func (m Model) renderHelp() string {
	var keys []string

	switch m.step {
	case StepType, StepAudioMethod:
		keys = append(keys, "j/k", "Navigate", "enter", "Select")
	case StepAudioUpload, StepSlides:
		keys = append(keys, "j/k", "Navigate", "enter", "Select file")
		if m.canProceed() {
			keys = append(keys, "c", "Continue")
		}
	case StepAudioRecord:
		if m.recording {
			keys = append(keys, "s", "Stop")
		} else {
			keys = append(keys, "r", "Record", "enter", "Continue")
		}
	case StepContext:
		keys = append(keys, "tab", "Switch field", "enter", "Submit")
	case StepResults:
		keys = append(keys, "tab/h/l", "Switch tab", "i", "Improve", "s", "Save report", "n", "New analysis")
	}

	if m.step != StepAnalyzing && m.step != StepResults {
		keys = append(keys, "esc", "Back")
	}
	if m.step != StepAnalyzing {
		keys = append(keys, "ctrl+c", "Quit")
	}

	if len(keys) == 0 {
		return ""
	}

	keyStyle := lipgloss.NewStyle().Foreground(ColorSubtle).Bold(true)
	var parts []string
	for i := 0; i+1 < len(keys); i += 2 {
		parts = append(parts, keyStyle.Render(keys[i])+" "+MutedStyle.Render(keys[i+1]))
	}
	return MutedStyle.Render(strings.Join(parts, "  |  "))
}

// Accessors for the program wrapper.

// IsQuitting reports whether the user exited the wizard.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the user backed out of the first step.
func (m Model) BackToMenu() bool { return m.backToMenu }

// Completed reports whether an analysis run finished.
func (m Model) Completed() bool { return m.complete }

// ReportPath returns the saved report location, if any.
func (m Model) ReportPath() string { return m.reportPath }

// reset returns a fresh session, releasing staged temp files.
func (m Model) reset() Model {
	m.stage.Reset()
	fresh := NewModel(m.client)
	fresh.width = m.width
	fresh.height = m.height
	return fresh
}

// RunWizard runs the wizard TUI and reports how it ended.
func RunWizard(client *pitch.Client) (backToMenu bool, reportPath string, err error) {
	model := NewModel(client)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, "", err
	}

	m := finalModel.(Model)
	m.stage.Reset()
	return m.BackToMenu(), m.ReportPath(), nil
}
