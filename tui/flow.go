package tui

// Step identifies a screen in the analysis wizard.
type Step int

const (
	StepType Step = iota
	StepAudioMethod
	StepAudioUpload
	StepAudioRecord
	StepSlides
	StepContext
	StepAnalyzing
	StepResults
)

// String returns the step's short name.
func (s Step) String() string {
	switch s {
	case StepType:
		return "type"
	case StepAudioMethod:
		return "audio-method"
	case StepAudioUpload:
		return "audio-upload"
	case StepAudioRecord:
		return "audio-record"
	case StepSlides:
		return "slides"
	case StepContext:
		return "context"
	case StepAnalyzing:
		return "analyzing"
	case StepResults:
		return "results"
	}
	return "unknown"
}

// AnalysisType selects which inputs a session analyzes.
type AnalysisType string

const (
	TypeSpeech AnalysisType = "speech"
	TypeSlides AnalysisType = "slides"
	TypeBoth   AnalysisType = "both"
)

// includesSpeech reports whether the session uploads audio.
func (t AnalysisType) includesSpeech() bool { return t == TypeSpeech || t == TypeBoth }

// includesSlides reports whether the session uploads a PDF.
func (t AnalysisType) includesSlides() bool { return t == TypeSlides || t == TypeBoth }

// AudioMethod selects how the audio input is provided.
type AudioMethod string

const (
	MethodUpload AudioMethod = "upload"
	MethodRecord AudioMethod = "record"
)

// audioStep returns the concrete step for the chosen audio method.
func audioStep(method AudioMethod) Step {
	if method == MethodRecord {
		return StepAudioRecord
	}
	return StepAudioUpload
}

// Next is the wizard's forward transition function. It is pure: given the
// current step and the session's choices it returns the following step, or
// (step, false) when no forward transition exists from here.
func Next(step Step, atype AnalysisType, method AudioMethod) (Step, bool) {
	switch step {
	case StepType:
		switch atype {
		case TypeSpeech, TypeBoth:
			return StepAudioMethod, true
		case TypeSlides:
			return StepSlides, true
		}
		return step, false

	case StepAudioMethod:
		switch method {
		case MethodUpload:
			return StepAudioUpload, true
		case MethodRecord:
			return StepAudioRecord, true
		}
		return step, false

	case StepAudioUpload, StepAudioRecord:
		if atype == TypeBoth {
			return StepSlides, true
		}
		return StepContext, true

	case StepSlides:
		return StepContext, true

	case StepContext:
		return StepAnalyzing, true

	case StepAnalyzing:
		return StepResults, true
	}

	return step, false
}

// Prev mirrors Next. Along any path reachable from the type step,
// Prev(Next(s)) == s and Next(Prev(s)) == s.
func Prev(step Step, atype AnalysisType, method AudioMethod) (Step, bool) {
	switch step {
	case StepAudioMethod:
		return StepType, true

	case StepAudioUpload, StepAudioRecord:
		return StepAudioMethod, true

	case StepSlides:
		if atype == TypeSlides {
			return StepType, true
		}
		return audioStep(method), true

	case StepContext:
		if atype.includesSlides() {
			return StepSlides, true
		}
		return audioStep(method), true
	}

	return step, false
}

// Path returns the ordered list of input-collection steps implied by the
// session's choices. Analyzing and results are terminal screens, not
// numbered steps.
func Path(atype AnalysisType, method AudioMethod) []Step {
	steps := []Step{StepType}
	if atype.includesSpeech() {
		steps = append(steps, StepAudioMethod, audioStep(method))
	}
	if atype.includesSlides() {
		steps = append(steps, StepSlides)
	}
	return append(steps, StepContext)
}

// StepCount returns how many numbered steps the indicator shows.
func StepCount(atype AnalysisType) int {
	n := 2 // type + context
	if atype.includesSpeech() {
		n += 2
	}
	if atype.includesSlides() {
		n++
	}
	return n
}

// StepNumber returns the 1-based position of step within the session's
// path. Terminal screens report the final position.
func StepNumber(step Step, atype AnalysisType, method AudioMethod) int {
	path := Path(atype, method)
	for i, s := range path {
		if s == step {
			return i + 1
		}
	}
	return len(path)
}
