package viewer

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petervdpas/folio/internal/config"
	"github.com/petervdpas/folio/internal/editor"
	"github.com/petervdpas/folio/internal/events"
	"github.com/petervdpas/folio/internal/project"
)

func TestLogBufferSplitsLines(t *testing.T) {
	b := NewLogBuffer(2)

	_, _ = b.Write([]byte("first\r\nsec"))
	_, _ = b.Write([]byte("ond\n\n   \nthird\n"))

	snap := b.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "second", snap[0].Msg)
	assert.Equal(t, "third", snap[1].Msg)
}

func TestLogBufferSubscribe(t *testing.T) {
	b := NewLogBuffer(10)
	ch, cancel := b.Subscribe()

	_, _ = b.Write([]byte("hello\n"))
	select {
	case e := <-ch:
		assert.Equal(t, "hello", e.Msg)
	case <-time.After(time.Second):
		t.Fatal("no entry delivered")
	}

	cancel()
	cancel()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestLogBufferJSON(t *testing.T) {
	b := NewLogBuffer(10)
	_, _ = b.Write([]byte("line\n"))

	rec := httptest.NewRecorder()
	b.ServeLogsJSON(rec, httptest.NewRequest(http.MethodGet, "/api/logs", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"msg":"line"`)

	rec = httptest.NewRecorder()
	b.ServeLogsJSON(rec, httptest.NewRequest(http.MethodPost, "/api/logs", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestParseLogLine(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	e := parseLogLine("2026-10-18T09:00:00.000Z\tWARN\tfolio/editor\teditor/session.go:12\tautosave target gone\t{\"id\": \"x\"}", now)
	assert.Equal(t, "warn", e.Level)
	assert.Equal(t, "folio/editor", e.Logger)
	assert.Equal(t, "autosave target gone\t{\"id\": \"x\"}", e.Msg)
	assert.Equal(t, 2026, e.TS.Year())
	assert.Equal(t, time.October, e.TS.Month())

	e = parseLogLine("plain stdlib line", now)
	assert.Equal(t, LogEntry{TS: now, Msg: "plain stdlib line"}, e)

	e = parseLogLine("a\tb\tc\td", now)
	assert.Empty(t, e.Level, "second field is not a level")
	assert.Equal(t, "a\tb\tc\td", e.Msg)
}

func TestLogStreamReplaysBacklog(t *testing.T) {
	b := NewLogBuffer(10)
	_, _ = b.Write([]byte("before\n"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/logs/stream?backlog=1", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		b.ServeLogsSSE(rec, req)
		close(done)
	}()

	subscribed := func(drained bool) func() bool {
		return func() bool {
			b.mu.Lock()
			defer b.mu.Unlock()
			for ch := range b.subs {
				return !drained || len(ch) == 0
			}
			return false
		}
	}
	require.Eventually(t, subscribed(false), time.Second, 5*time.Millisecond)
	_, _ = b.Write([]byte("after\n"))
	require.Eventually(t, subscribed(true), time.Second, 5*time.Millisecond)
	cancel()
	<-done

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "event: log\ndata: ")
	before, after := strings.Index(body, `"msg":"before"`), strings.Index(body, `"msg":"after"`)
	require.GreaterOrEqual(t, before, 0, body)
	assert.Greater(t, after, before, body)

	b.mu.Lock()
	assert.Empty(t, b.subs, "the stream unsubscribes when the client goes away")
	b.mu.Unlock()
}

func TestAssetHandler(t *testing.T) {
	h := assetHandler(map[string][]byte{
		"app.css": []byte("body{}"),
		"app.js":  []byte("let a=1"),
	})

	cases := []struct {
		method, path string
		code         int
		ctype        string
	}{
		{http.MethodGet, "/app.css", http.StatusOK, "text/css; charset=utf-8"},
		{http.MethodHead, "/app.js", http.StatusOK, "application/javascript; charset=utf-8"},
		{http.MethodGet, "/nope.css", http.StatusNotFound, ""},
		{http.MethodPost, "/app.css", http.StatusMethodNotAllowed, ""},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.code, rec.Code, tc.path)
		if tc.ctype != "" {
			assert.Equal(t, tc.ctype, rec.Header().Get("Content-Type"), tc.path)
		}
	}
}

func TestContentTypeForPath(t *testing.T) {
	assert.Equal(t, "image/svg+xml", contentTypeForPath("x.svg", nil))
	assert.Equal(t, "application/json; charset=utf-8", contentTypeForPath("a.json", nil))
	assert.Contains(t, contentTypeForPath("blob", []byte("<html><body>")), "text/html")
}

func TestNoCache(t *testing.T) {
	h := noCache(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")
}

func testViewer(t *testing.T) Viewer {
	t.Helper()
	cfg := config.Default()
	cfg.Viewer.Minify = false
	s := editor.New(project.Default(), nil, nil, editor.Options{Autosave: time.Hour})
	t.Cleanup(s.Close)
	return Viewer{Session: s, Hub: events.NewHub(4), Logs: NewLogBuffer(10), Cfg: cfg}
}

func TestHandlerServesAssetsAndPages(t *testing.T) {
	h, err := Handler(testViewer(t))
	require.NoError(t, err)

	for _, path := range []string{"/", "/ide", "/assets/app.css", "/assets/ide.js", "/api/logs"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	h, err := Handler(testViewer(t))
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, h) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/project")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "main.lua")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
