package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/gopher-lua/parse"
)

// Diagnostic is the first problem found by Check.
type Diagnostic struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// Report is the result of a syntax check.
type Report struct {
	OK          bool        `json:"ok"`
	Description string      `json:"description,omitempty"`
	Diagnostic  *Diagnostic `json:"diagnostic,omitempty"`
}

// Check parses src as Lua 5.1 and reports the first syntax error. The chunk
// is discarded after parsing; nothing is compiled or run. Luau-only syntax
// (type annotations, compound assignment) is reported as an error too.
func Check(name, src string) Report {
	r := Report{OK: true, Description: Describe(src)}
	if _, err := parse.Parse(strings.NewReader(src), name); err != nil {
		r.OK = false
		d := &Diagnostic{Message: err.Error()}
		var perr *parse.Error
		if errors.As(err, &perr) {
			d.Line = perr.Pos.Line
			d.Column = perr.Pos.Column
			d.Message = strings.TrimSpace(perr.Message)
			if perr.Token != "" && perr.Pos.Line != parse.EOF {
				d.Message += " near '" + perr.Token + "'"
			}
		}
		r.Diagnostic = d
	}
	return r
}

// Describe returns the first "---" comment of a script, skipping
// "--- @tag" annotations. It is shown next to the file in the IDE header.
func Describe(src string) string {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "---") {
			desc := strings.TrimSpace(strings.TrimPrefix(line, "---"))
			if !strings.HasPrefix(desc, "@") {
				return desc
			}
			continue
		}
		break
	}
	return ""
}

// Lines converts a report into console lines, the way the IDE shows it
// ahead of a run.
func (r Report) Lines() []Line {
	if r.OK {
		return []Line{{Level: LevelLog, Text: "Syntax OK"}}
	}
	d := r.Diagnostic
	switch {
	case d.Line > 0:
		return []Line{{Level: LevelWarn, Text: fmt.Sprintf("line %d: %s", d.Line, d.Message)}}
	case d.Line == parse.EOF:
		return []Line{{Level: LevelWarn, Text: "end of file: " + d.Message}}
	}
	return []Line{{Level: LevelWarn, Text: d.Message}}
}
