package editor

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/petervdpas/folio/internal/events"
	"github.com/petervdpas/folio/internal/project"
	"github.com/petervdpas/folio/internal/runner"
	"github.com/petervdpas/folio/internal/workspace"
)

// Run pretends to execute the open file. Output is published and returned.
func (s *Session) Run() []runner.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushLocked()
	code := ""
	if f := s.proj.ActiveFile(); f != nil {
		code = f.Content
	}
	lines := runner.Run(code)
	s.outputLocked(lines...)
	return lines
}

// Check parses the open file without running it.
func (s *Session) Check() (runner.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushLocked()
	f := s.proj.ActiveFile()
	if f == nil {
		return runner.Report{}, ErrNoActiveFile
	}
	r := runner.Check(f.Name, f.Content)
	s.outputLocked(r.Lines()...)
	return r, nil
}

// Export packages the project for download.
func (s *Session) Export() ([]workspace.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushLocked()
	arts, err := workspace.Export(s.proj, workspace.ExportOptions{
		Archive: s.opts.Archive,
		Ext:     s.opts.DefaultExt,
	})
	if err != nil {
		s.outputLocked(runner.Line{Level: runner.LevelError, Text: "Export failed: " + err.Error()})
		return nil, err
	}

	switch {
	case len(arts) == 1 && arts[0].Name == workspace.ZipName:
		s.outputLocked(runner.Line{Level: runner.LevelLog, Text: "Exported project: " + workspace.ZipName})
	case len(arts) == 1:
		s.outputLocked(runner.Line{Level: runner.LevelLog, Text: "Exported file: " + arts[0].Name})
	default:
		s.outputLocked(runner.Line{Level: runner.LevelLog, Text: fmt.Sprintf("Exported %d file(s)", len(arts))})
	}
	return arts, nil
}

// ExportCopy packages the project with any pending edit applied, the way
// Export does, but writes nothing and reports nothing.
func (s *Session) ExportCopy() ([]workspace.Artifact, error) {
	p := s.Project()
	return workspace.Export(p, workspace.ExportOptions{
		Archive: s.opts.Archive,
		Ext:     s.opts.DefaultExt,
	})
}

// ImportResult describes what an upload changed.
type ImportResult struct {
	Kind    string `json:"kind"` // "project" or "file"
	FileID  string `json:"file_id,omitempty"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Import applies an uploaded document. A .json upload replaces the whole
// project; anything else becomes a new file in the root and is opened.
// A bad project document leaves the session untouched.
func (s *Session) Import(name string, data []byte) (ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushLocked()
	imp, err := workspace.ParseImport(name, data)
	if err != nil {
		msg := "Import failed: " + workspace.ErrInvalidImport.Error()
		if !errors.Is(err, workspace.ErrInvalidImport) {
			msg = "Import failed: " + err.Error()
		}
		s.outputLocked(runner.Line{Level: runner.LevelError, Text: msg})
		return ImportResult{}, err
	}

	switch imp.Kind {
	case workspace.ImportProject:
		s.proj = imp.Project
		s.selectedFolder = s.proj.Root.ID
		s.buffer = ""
		if f := s.proj.ActiveFile(); f != nil {
			s.buffer = f.Content
		}
		s.saveLocked()
		res := ImportResult{Kind: "project", Name: name, Message: "Imported project: " + name}
		if s.pub != nil {
			s.pub.Publish(events.Replaced, s.viewLocked())
		}
		s.outputLocked(runner.Line{Level: runner.LevelLog, Text: res.Message})
		return res, nil

	default:
		f, err := s.proj.CreateFile(s.proj.Root.ID, imp.Name, imp.Content)
		if err != nil {
			return ImportResult{}, err
		}
		s.proj.ActiveFileID = f.ID
		s.buffer = f.Content
		s.saveLocked()
		s.changedLocked()
		res := ImportResult{Kind: "file", FileID: f.ID, Name: f.Name, Message: "Imported file: " + f.Name}
		s.outputLocked(runner.Line{Level: runner.LevelLog, Text: res.Message})
		return res, nil
	}
}

// Search finds term in the buffer starting at from and wrapping around.
func (s *Session) Search(term string, from int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Search(s.buffer, term, from)
}

// Search returns the offset of the first occurrence of term at or after
// from, wrapping to the start of text; -1 when term does not occur.
// Offsets count UTF-16 code units so they can be fed straight to a
// browser selection.
func Search(text, term string, from int) int {
	if term == "" {
		return -1
	}
	hay := utf16.Encode([]rune(text))
	needle := utf16.Encode([]rune(term))
	if from < 0 || from > len(hay) {
		from = 0
	}
	if i := indexUnits(hay, needle, from); i >= 0 {
		return i
	}
	return indexUnits(hay, needle, 0)
}

func indexUnits(hay, needle []uint16, from int) int {
	for i := from; i+len(needle) <= len(hay); i++ {
		match := true
		for j := range needle {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// ActiveFile returns a copy of the open file, or nil.
func (s *Session) ActiveFile() *project.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.proj.ActiveFile()
	if f == nil {
		return nil
	}
	c := *f
	if s.pending && s.pendingFile == f.ID {
		c.Content = s.buffer
	}
	return &c
}
