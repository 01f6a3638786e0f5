// Package pitch provides a Go client for the pitch-perfect analysis service.
// It covers the audio analysis, slide-deck analysis and improved-pitch
// generation endpoints.
package pitch

// Speed labels assigned to each transcribed word by the analysis service.
const (
	SpeedSlow     = "Slow"
	SpeedMedium   = "Medium"
	SpeedFast     = "Fast"
	SpeedVeryFast = "Very Fast"
)

// SpeedLabels lists the four labels in ascending order of speaking rate.
var SpeedLabels = []string{SpeedSlow, SpeedMedium, SpeedFast, SpeedVeryFast}

// WordAnalysis is the per-word speech-rate annotation.
type WordAnalysis struct {
	// Word is the transcribed word as it appears in the transcript
	Word string `json:"word"`

	// Speed is one of the four speed labels
	Speed string `json:"speed"`

	// SyllablesPerMinute is the local speaking rate around this word
	SyllablesPerMinute float64 `json:"syllables_per_minute"`
}

// Sample is a [time, value] pair from a time-series returned by the service.
// Index 0 is the time in seconds, index 1 the measured value.
type Sample [2]float64

// Time returns the sample's time coordinate in seconds.
func (s Sample) Time() float64 { return s[0] }

// Value returns the sample's measured value.
func (s Sample) Value() float64 { return s[1] }

// AxisScore is a single scored insight axis.
type AxisScore struct {
	// Score is an integer rating from 0 to 5
	Score int `json:"score"`

	// Insight is the observation backing the score
	Insight string `json:"insight"`

	// Action is the suggested improvement
	Action string `json:"action"`
}

// FillerWords extends AxisScore with the number of filler words detected.
type FillerWords struct {
	AxisScore
	Count int `json:"count"`
}

// Insights is the structured multi-axis assessment of a pitch.
type Insights struct {
	// OverallVerdict is the service's one-paragraph summary judgment
	OverallVerdict string `json:"overall_verdict"`

	Clarity     AxisScore   `json:"clarity"`
	Pacing      AxisScore   `json:"pacing"`
	FillerWords FillerWords `json:"filler_words"`
	Structure   AxisScore   `json:"structure"`
	Engagement  AxisScore   `json:"engagement"`
}

// Axes returns the five scored axes in display order with their names.
func (i Insights) Axes() []NamedAxis {
	return []NamedAxis{
		{"Clarity", i.Clarity},
		{"Pacing", i.Pacing},
		{"Filler Words", i.FillerWords.AxisScore},
		{"Structure", i.Structure},
		{"Engagement", i.Engagement},
	}
}

// NamedAxis pairs an axis label with its score for rendering.
type NamedAxis struct {
	Name string
	AxisScore
}

// AudioAnalysis is the response from the /analyze endpoint.
type AudioAnalysis struct {
	// Transcription is the full transcript text
	Transcription string `json:"transcription"`

	// WordAnalysis carries per-word speed annotations
	WordAnalysis []WordAnalysis `json:"word_analysis"`

	// Timestamps are [endTimeSeconds, syllablesPerMinute] pace samples
	Timestamps []Sample `json:"timestamps"`

	// Loudness are [timeSeconds, decibels] samples
	Loudness []Sample `json:"loudness"`

	// Insights is the structured assessment
	Insights Insights `json:"insights"`

	// VerdictAudio is base64-encoded narration of the overall verdict
	VerdictAudio string `json:"verdict_audio"`
}

// Page is a single extracted slide-deck page.
type Page struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// PDFAnalysis is the response from the /analyze-pdf endpoint.
type PDFAnalysis struct {
	TotalPages int    `json:"total_pages"`
	Pages      []Page `json:"pages"`
	Summary    string `json:"summary"`
}

// ImprovedPitch is the response from the /generate-improved-pitch endpoint.
type ImprovedPitch struct {
	// ImprovedText is the rewritten pitch script
	ImprovedText string `json:"improved_text"`

	// ImprovedAudio is base64-encoded synthesized narration of the rewrite
	ImprovedAudio string `json:"improved_audio"`
}

// Result is the outcome of one analysis run. At least one of Audio and
// Slides is set after a successful submission.
type Result struct {
	Audio  *AudioAnalysis
	Slides *PDFAnalysis
}

// APIError represents an error response from the analysis service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
