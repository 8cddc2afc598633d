package editor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/petervdpas/folio/internal/events"
	"github.com/petervdpas/folio/internal/project"
	"github.com/petervdpas/folio/internal/runner"
	"github.com/petervdpas/folio/internal/storage"
	"github.com/petervdpas/folio/internal/workspace"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder counts saves and remembers what each one wrote.
type recorder struct {
	mu     sync.Mutex
	writes []string
}

func (r *recorder) Save(_ context.Context, p *project.Project) {
	b, _ := project.Encode(p)
	r.mu.Lock()
	r.writes = append(r.writes, string(b))
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

type capture struct {
	mu     sync.Mutex
	events []events.Event
}

func (c *capture) Publish(t events.Type, data any) {
	c.mu.Lock()
	c.events = append(c.events, events.Event{Type: t, Data: data})
	c.mu.Unlock()
}

func (c *capture) of(t events.Type) []events.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []events.Event
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newSession(t *testing.T, autosave time.Duration) (*Session, *recorder, *capture) {
	t.Helper()
	rec, pub := &recorder{}, &capture{}
	s := New(project.Default(), rec, pub, Options{Autosave: autosave, Archive: true})
	t.Cleanup(s.Close)
	return s, rec, pub
}

func TestNewLoadsActiveBuffer(t *testing.T) {
	s, _, _ := newSession(t, time.Hour)
	v := s.View()
	assert.Equal(t, "Project", v.RootName)
	assert.Equal(t, "main.lua", v.ActiveName)
	assert.Equal(t, "print('Hello from Luau!')\n", v.Buffer)
	assert.Equal(t, project.RootID, v.SelectedFolderID)
	assert.Equal(t, 1, v.FileCount)
}

func TestRapidEditsCoalesceIntoOneWrite(t *testing.T) {
	s, rec, pub := newSession(t, 100*time.Millisecond)

	main := s.View().ActiveFileID
	for i, text := range []string{"p", "pr", "pri", "print('done')"} {
		require.NoError(t, s.Edit(main, text, int64(i+1)))
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, 0, rec.count(), "nothing is written while typing")

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 1, rec.count(), "one write per quiet period")
	assert.False(t, s.Pending())
	assert.Len(t, pub.of(events.Saved), 1)
	assert.Equal(t, "print('done')", s.ActiveFile().Content)

	require.NoError(t, s.Edit(main, "print('again')", 5))
	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestOpenFlushesToTheArmedFile(t *testing.T) {
	s, rec, _ := newSession(t, time.Hour)
	main := s.View().ActiveFileID

	other, err := s.CreateFile("", "other")
	require.NoError(t, err)
	assert.Equal(t, "other.lua", other.Name)
	_, err = s.Open(main)
	require.NoError(t, err)

	require.NoError(t, s.Edit(main, "print('edited main')", 1))
	before := rec.count()

	v, err := s.Open(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "", v.Buffer)
	assert.False(t, v.Pending)
	assert.Greater(t, rec.count(), before)

	p := s.Project()
	assert.Equal(t, "print('edited main')", project.FindByID(p.Root, main).Content)
	assert.Equal(t, "", project.FindByID(p.Root, other.ID).Content)
}

func TestLateEditAfterOpenIsRefused(t *testing.T) {
	s, _, _ := newSession(t, 20*time.Millisecond)
	a := s.View().ActiveFileID
	b, err := s.CreateFile("", "b")
	require.NoError(t, err)
	_, err = s.Open(b.ID)
	require.NoError(t, err)

	// a keystroke typed into a arrives after b was opened
	assert.ErrorIs(t, s.Edit(a, "print('text typed into a')", 1), ErrStaleEdit)
	assert.False(t, s.Pending())
	time.Sleep(60 * time.Millisecond)

	p := s.Project()
	assert.Equal(t, "print('Hello from Luau!')\n", project.FindByID(p.Root, a).Content)
	assert.Equal(t, "", project.FindByID(p.Root, b.ID).Content)
	assert.Equal(t, "", s.View().Buffer)
}

func TestOutOfOrderEditsAreDropped(t *testing.T) {
	s, _, _ := newSession(t, time.Hour)
	main := s.View().ActiveFileID

	require.NoError(t, s.Edit(main, "pri", 3))
	require.NoError(t, s.Edit(main, "pr", 2))
	require.NoError(t, s.Edit(main, "p", 1))
	require.NoError(t, s.Edit(main, "pri", 3))

	v := s.View()
	assert.Equal(t, "pri", v.Buffer)
	assert.Equal(t, int64(3), v.EditSeq)

	// the sequence carries across files, so a client resumes from EditSeq
	other, err := s.CreateFile("", "other")
	require.NoError(t, err)
	v, err = s.Open(other.ID)
	require.NoError(t, err)
	require.NoError(t, s.Edit(other.ID, "x", v.EditSeq+1))
	assert.Equal(t, "x", s.View().Buffer)

	s.Flush()
	assert.Equal(t, "pri", project.FindByID(s.Project().Root, main).Content)
}

func TestEditWithoutActiveFile(t *testing.T) {
	s, _, _ := newSession(t, time.Hour)
	main := s.View().ActiveFileID
	require.NoError(t, s.Delete(main))

	assert.ErrorIs(t, s.Edit(main, "x", 1), ErrNoActiveFile)
	v := s.View()
	assert.Empty(t, v.ActiveFileID)
	assert.Empty(t, v.Buffer)

	_, err := s.Check()
	assert.ErrorIs(t, err, ErrNoActiveFile)
	assert.Equal(t, []runner.Line{{Level: runner.LevelLog, Text: runner.NoOutput}}, s.Run())
}

func TestDeleteFlushesBeforeRemoving(t *testing.T) {
	s, _, _ := newSession(t, time.Hour)
	lib, err := s.CreateFolder("", "lib")
	require.NoError(t, err)
	f, err := s.CreateFile(lib.ID, "util")
	require.NoError(t, err)
	require.NoError(t, s.Edit(f.ID, "return {}", 1))

	require.NoError(t, s.Delete(lib.ID))
	assert.False(t, s.Pending())
	assert.Nil(t, project.FindByID(s.Project().Root, f.ID))
	assert.Empty(t, s.View().ActiveFileID)
}

func TestCreateUsesSelectedFolder(t *testing.T) {
	s, _, pub := newSession(t, time.Hour)
	lib, err := s.CreateFolder("", "lib")
	require.NoError(t, err)

	assert.Equal(t, lib.ID, s.SelectFolder(lib.ID))
	f, err := s.CreateFile("", "a.lua")
	require.NoError(t, err)
	assert.Equal(t, lib.ID, project.FindParentOf(s.Project().Root, f.ID).ID)

	// selecting a file selects its folder
	assert.Equal(t, lib.ID, s.SelectFolder(f.ID))
	assert.Equal(t, project.RootID, s.SelectFolder("nope"))

	_, err = s.CreateFile("", "   ")
	assert.ErrorIs(t, err, project.ErrEmptyName)

	assert.NotEmpty(t, pub.of(events.TreeChanged))
}

func TestTreeProxies(t *testing.T) {
	s, rec, _ := newSession(t, time.Hour)
	lib, err := s.CreateFolder("", "lib")
	require.NoError(t, err)
	main := s.View().ActiveFileID

	require.NoError(t, s.Move(main, lib.ID))
	assert.ErrorIs(t, s.Move(lib.ID, main), project.ErrCycle)

	name, err := s.Rename(main, "init.lua")
	require.NoError(t, err)
	assert.Equal(t, "init.lua", name)

	collapsed, err := s.ToggleFolder(lib.ID)
	require.NoError(t, err)
	assert.True(t, collapsed)
	assert.Len(t, s.View().Rows, 1, "collapsed folder hides its children")

	assert.GreaterOrEqual(t, rec.count(), 4)
}

func TestRunFlushesAndPublishes(t *testing.T) {
	s, _, pub := newSession(t, time.Hour)
	require.NoError(t, s.Edit(s.View().ActiveFileID, "print(\"hi\")\nwarn('x')\n-- c\nerror(\"boom\")", 1))

	lines := s.Run()
	assert.Equal(t, []runner.Line{
		{Level: runner.LevelLog, Text: "hi"},
		{Level: runner.LevelWarn, Text: "x"},
		{Level: runner.LevelError, Text: "boom"},
	}, lines)
	assert.False(t, s.Pending())
	assert.Len(t, pub.of(events.Output), 1)

	r, err := s.Check()
	require.NoError(t, err)
	assert.True(t, r.OK)
}

func TestExportAndImport(t *testing.T) {
	s, _, pub := newSession(t, time.Hour)

	arts, err := s.Export()
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, "main.lua", arts[0].Name)

	res, err := s.Import("tool.lua", []byte("print('tool')"))
	require.NoError(t, err)
	assert.Equal(t, "file", res.Kind)
	assert.Equal(t, "Imported file: tool.lua", res.Message)
	assert.Equal(t, res.FileID, s.View().ActiveFileID)

	arts, err = s.Export()
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, workspace.ZipName, arts[0].Name)

	_, err = s.Import("bad.json", []byte("{nope"))
	assert.ErrorIs(t, err, workspace.ErrInvalidImport)
	assert.Equal(t, 2, s.View().FileCount, "failed import leaves the project alone")

	other := project.Default()
	other.Root.Name = "Imported"
	doc, err := project.Encode(other)
	require.NoError(t, err)
	res, err = s.Import("backup.json", doc)
	require.NoError(t, err)
	assert.Equal(t, "project", res.Kind)
	assert.Equal(t, "Imported", s.View().RootName)
	assert.Equal(t, other.ActiveFileID, s.View().ActiveFileID)
	assert.Len(t, pub.of(events.Replaced), 1)
}

func TestSearchWraps(t *testing.T) {
	text := "print('a')\nprint('b')"
	assert.Equal(t, 11, Search(text, "print", 1))
	assert.Equal(t, 0, Search(text, "print", 12))
	assert.Equal(t, -1, Search(text, "warn", 0))
	assert.Equal(t, -1, Search(text, "", 0))
	assert.Equal(t, 0, Search(text, "print", 999))
	// "é" is one code unit, the emoji two
	assert.Equal(t, 3, Search("é😀x", "x", 0))
}

func TestCloseStopsAutosave(t *testing.T) {
	rec := &recorder{}
	s := New(nil, rec, nil, Options{Autosave: time.Hour})
	main := s.View().ActiveFileID
	require.NoError(t, s.Edit(main, "x", 1))
	s.Close()
	s.Close()
	assert.Equal(t, 1, rec.count(), "close flushes the pending edit")
	assert.ErrorIs(t, s.Edit(main, "y", 2), ErrClosed)
}

func TestSessionWithWorkspaceRoundTrip(t *testing.T) {
	ctx := context.Background()
	ws := workspace.New(storage.NewMemory(), "")
	s := New(ws.Load(ctx), ws, events.NewHub(4), Options{Autosave: time.Hour})
	defer s.Close()

	_, err := s.CreateFolder("", "lib")
	require.NoError(t, err)
	require.NoError(t, s.Edit(s.View().ActiveFileID, "print('persisted')", 1))
	s.Flush()

	got := ws.Load(ctx)
	assert.Equal(t, 2, len(got.Root.Children))
	assert.Equal(t, "print('persisted')", got.ActiveFile().Content)
}
