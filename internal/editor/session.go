// Package editor owns the live IDE state: the project, the open file, its
// text buffer and the autosave that writes the buffer back.
//
// Every exported method takes the session lock, so concurrent HTTP handlers
// see the same ordering a single UI event loop would.
package editor

import (
	"context"
	"errors"
	"sync"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/petervdpas/folio/internal/events"
	"github.com/petervdpas/folio/internal/project"
	"github.com/petervdpas/folio/internal/runner"
)

var log = logging.Logger("folio/editor")

var (
	ErrNoActiveFile = errors.New("no file is open")
	ErrClosed       = errors.New("session closed")
	ErrStaleEdit    = errors.New("edit is for a file that is no longer open")
)

// Persister stores the project. Implementations are best-effort: a failed
// write is their problem to log.
type Persister interface {
	Save(ctx context.Context, p *project.Project)
}

// Publisher receives state change notifications.
type Publisher interface {
	Publish(t events.Type, data any)
}

type Options struct {
	Autosave   time.Duration
	DefaultExt string
	Archive    bool
}

func (o Options) withDefaults() Options {
	if o.Autosave <= 0 {
		o.Autosave = 250 * time.Millisecond
	}
	if o.DefaultExt == "" {
		o.DefaultExt = ".lua"
	}
	return o
}

type Session struct {
	mu    sync.Mutex
	opts  Options
	store Persister
	pub   Publisher

	proj           *project.Project
	selectedFolder string
	buffer         string

	// seq is the last accepted edit sequence
	seq int64

	// autosave state; pendingFile is the file the armed timer will write to
	timer       *time.Timer
	gen         uint64
	pending     bool
	pendingFile string

	closed bool
}

// New starts a session on p. A nil p starts from the default project; a
// nil pub discards notifications.
func New(p *project.Project, store Persister, pub Publisher, opts Options) *Session {
	if p == nil {
		p = project.Default()
	}
	s := &Session{
		opts:           opts.withDefaults(),
		store:          store,
		pub:            pub,
		proj:           p,
		selectedFolder: p.Root.ID,
	}
	if f := p.ActiveFile(); f != nil {
		s.buffer = f.Content
	}
	return s
}

// View is what the IDE page needs to draw itself.
type View struct {
	RootName         string        `json:"root_name"`
	Rows             []project.Row `json:"rows"`
	ActiveFileID     string        `json:"active_file_id"`
	ActiveName       string        `json:"active_name"`
	Buffer           string        `json:"buffer"`
	SelectedFolderID string        `json:"selected_folder_id"`
	Pending          bool          `json:"pending"`
	FileCount        int           `json:"file_count"`
	EditSeq          int64         `json:"edit_seq"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		RootName:         s.proj.Root.Name,
		Rows:             project.Flatten(s.proj.Root, s.proj.ActiveFileID),
		SelectedFolderID: s.selectedFolder,
		Pending:          s.pending,
		FileCount:        project.CountFiles(s.proj.Root),
		EditSeq:          s.seq,
	}
	if f := s.proj.ActiveFile(); f != nil {
		v.ActiveFileID = f.ID
		v.ActiveName = f.Name
		v.Buffer = s.buffer
	}
	return v
}

// Project returns a copy of the current project with any pending edit
// applied to the copy only.
func (s *Session) Project() *project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.proj.Clone()
	if s.pending {
		_ = p.SetContent(s.pendingFile, s.buffer)
	}
	return p
}

// Open makes fileID the active file and loads its content into the buffer.
// A pending autosave is written to the file it was armed for first.
func (s *Session) Open(fileID string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := project.FindByID(s.proj.Root, fileID)
	if f == nil {
		return View{}, project.ErrNotFound
	}
	if !f.IsFile() {
		return View{}, project.ErrNotFile
	}
	s.flushLocked()

	s.proj.ActiveFileID = f.ID
	s.buffer = f.Content
	s.saveLocked()
	s.changedLocked()
	return s.viewLocked(), nil
}

// Edit replaces the buffer of fileID and (re)arms the autosave timer. Rapid
// edits collapse into one write once the buffer has been quiet for the
// autosave interval.
//
// fileID must be the active file, otherwise ErrStaleEdit is returned. An
// edit whose seq is not above the last accepted one arrived out of order
// and is dropped without error; clients continue from View.EditSeq.
func (s *Session) Edit(fileID, text string, seq int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	f := s.proj.ActiveFile()
	if f == nil {
		return ErrNoActiveFile
	}
	if fileID != f.ID {
		return ErrStaleEdit
	}
	if seq <= s.seq {
		log.Debugf("dropping edit %d of %s, already at %d", seq, f.ID, s.seq)
		return nil
	}
	s.seq = seq

	s.buffer = text
	s.pending = true
	s.pendingFile = f.ID
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.opts.Autosave, func() { s.onTimer(gen) })
	return nil
}

func (s *Session) onTimer(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// a later Edit or a flush superseded this timer
	if gen != s.gen || !s.pending {
		return
	}
	s.flushLocked()
}

// Flush writes a pending edit now. It reports whether anything was written.
func (s *Session) Flush() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

// Pending reports whether an edit is waiting for the autosave timer.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *Session) flushLocked() bool {
	if !s.pending {
		return false
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	s.gen++

	if err := s.proj.SetContent(s.pendingFile, s.buffer); err != nil {
		// the file was removed while the edit was pending
		log.Debugf("autosave target %s gone: %v", s.pendingFile, err)
		return false
	}
	s.saveLocked()
	if s.pub != nil {
		s.pub.Publish(events.Saved, map[string]string{"file_id": s.pendingFile})
	}
	return true
}

func (s *Session) saveLocked() {
	if s.store != nil {
		s.store.Save(context.Background(), s.proj)
	}
}

func (s *Session) changedLocked() {
	if s.pub != nil {
		s.pub.Publish(events.TreeChanged, s.viewLocked())
	}
}

func (s *Session) outputLocked(lines ...runner.Line) {
	if s.pub != nil && len(lines) > 0 {
		s.pub.Publish(events.Output, lines)
	}
}

// Close writes any pending edit and stops the autosave timer.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.flushLocked()
	s.closed = true
}
