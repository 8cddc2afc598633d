// Package runner is the IDE's pretend interpreter. It never evaluates code:
// Run echoes string-literal print, warn and error calls line by line, and
// Check only parses the buffer to report the first syntax error.
package runner

import (
	"regexp"
	"strings"
)

type Level string

const (
	LevelLog   Level = "log"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// NoOutput is the single line emitted when nothing matched.
const NoOutput = "No output"

// Line is one entry of the output console.
type Line struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// A literal is quoted with either ' or ", the same quote at both ends.
// RE2 has no backreferences, so each quote style is its own alternative.
func callPattern(fn string) *regexp.Regexp {
	return regexp.MustCompile(`^` + fn + `\((?:"(.*)"|'(.*)')\)\s*;?$`)
}

var rules = []struct {
	re    *regexp.Regexp
	level Level
}{
	{callPattern("print"), LevelLog},
	{callPattern("warn"), LevelWarn},
	{callPattern("error"), LevelError},
}

// Run scans src and returns the console lines it would print. Blank lines
// and -- comments are skipped; lines that are not a recognised call are
// ignored.
func Run(src string) []Line {
	var out []Line
	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		if l, ok := match(line); ok {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return []Line{{Level: LevelLog, Text: NoOutput}}
	}
	return out
}

func match(line string) (Line, bool) {
	for _, r := range rules {
		m := r.re.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		// group 1 is the double-quoted body, group 2 the single-quoted one
		for g := 1; g <= 2; g++ {
			if m[2*g] >= 0 {
				return Line{Level: r.level, Text: line[m[2*g]:m[2*g+1]]}, true
			}
		}
	}
	return Line{}, false
}
