package portfolio

import (
	"strings"
)

// Line kinds for the boot terminal.
const (
	LineOK      = "ok"  // drawn with a green "[ OK ]" badge
	LineCommand = "cmd" // drawn after a "> " prompt
)

type BootLine struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Timings are the animation delays in milliseconds.
type Timings struct {
	StartDelay      int `json:"start_delay"`      // button click to first boot line
	Line            int `json:"line"`             // between boot lines
	Settle          int `json:"settle"`           // after the last line, before fullscreen
	StackTransition int `json:"stack_transition"` // one stacked-window switch
	LoadingStep     int `json:"loading_step"`     // per loading bar step on IDE entry
	IntroChar       int `json:"intro_char"`       // per typed character of the IDE intro
	IntroHold       int `json:"intro_hold"`       // pause after the intro is typed
}

// Stack geometry for the wheel-driven window paging.
type StackGeometry struct {
	MinGap         int     `json:"min_gap"`         // px
	GapRatio       float64 `json:"gap_ratio"`       // of the viewport height
	WheelThreshold int     `json:"wheel_threshold"` // accumulated deltaY before a switch
}

// Boot is everything the landing page script needs to play its intro.
type Boot struct {
	Lines        []BootLine    `json:"lines"`
	Prompt       string        `json:"prompt"`
	Intro        string        `json:"intro"`
	LoadingSteps []int         `json:"loading_steps"`
	Timings      Timings       `json:"timings"`
	Stack        StackGeometry `json:"stack"`
}

func DefaultTimings() Timings {
	return Timings{
		StartDelay:      800,
		Line:            100,
		Settle:          600,
		StackTransition: 1200,
		LoadingStep:     800,
		IntroChar:       70,
		IntroHold:       700,
	}
}

// NewBoot builds the boot sequence for handle. An empty handle falls back
// to "guest".
func NewBoot(handle string) Boot {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		handle = "guest"
	}
	return Boot{
		Lines: ParseBootLines([]string{
			"[ OK ] Initializing...",
			"[ OK ] System Secure.",
			handle + "@login:~$ mount /ui",
			"Status: CONNECTED",
		}),
		Prompt:       handle + "@login >",
		Intro:        " hello user",
		LoadingSteps: []int{25, 50, 75, 100},
		Timings:      DefaultTimings(),
		Stack: StackGeometry{
			MinGap:         700,
			GapRatio:       0.98,
			WheelThreshold: 40,
		},
	}
}

// ParseBootLines classifies raw terminal lines. A line containing "[ OK ]"
// loses the marker and becomes an ok line; anything else is a command.
func ParseBootLines(raw []string) []BootLine {
	out := make([]BootLine, 0, len(raw))
	for _, text := range raw {
		if strings.Contains(text, "[ OK ]") {
			out = append(out, BootLine{Kind: LineOK, Text: strings.TrimSpace(strings.Replace(text, "[ OK ]", "", 1))})
			continue
		}
		out = append(out, BootLine{Kind: LineCommand, Text: text})
	}
	return out
}

// Duration is the total time in milliseconds from the start click until
// the stacked windows take input.
func (b Boot) Duration() int {
	t := b.Timings
	return t.StartDelay + len(b.Lines)*t.Line + 2*t.Settle
}

// Next returns the window index after index, clamped to count-1.
func Next(index, count int) int {
	return clamp(index+1, count)
}

// Prev returns the window index before index, clamped to 0.
func Prev(index, count int) int {
	return clamp(index-1, count)
}

func clamp(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
