package viewer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	logging "github.com/ipfs/go-log/v2"

	"github.com/petervdpas/folio/internal/util"
)

// LogEntry is one captured log line. Level and Logger are filled when the
// line came from go-log's plaintext format.
type LogEntry struct {
	TS     time.Time `json:"ts"`
	Level  string    `json:"level,omitempty"`
	Logger string    `json:"logger,omitempty"`
	Msg    string    `json:"msg"`
}

// LogBuffer keeps the most recent log lines for the owner's log view and
// fans new ones out to live streams.
type LogBuffer struct {
	mu      sync.Mutex
	entries *util.RingBuffer[LogEntry]
	subs    map[chan LogEntry]struct{}
	line    bytes.Buffer // unterminated tail of the last Write
}

func NewLogBuffer(max int) *LogBuffer {
	if max <= 0 {
		max = 500
	}
	return &LogBuffer{
		entries: util.NewRingBuffer[LogEntry](max),
		subs:    make(map[chan LogEntry]struct{}),
	}
}

// Write implements io.Writer. Each complete non-blank line becomes an entry.
func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.line.Write(p)
	for {
		i := bytes.IndexByte(b.line.Bytes(), '\n')
		if i < 0 {
			return len(p), nil
		}
		raw := strings.TrimRight(string(b.line.Next(i + 1)[:i]), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		b.addLocked(parseLogLine(raw, time.Now()))
	}
}

func (b *LogBuffer) addLocked(e LogEntry) {
	b.entries.Push(e)
	for ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// parseLogLine splits go-log's plaintext layout
// "<time>\t<LEVEL>\t<logger>\t<caller>\t<message>". Anything else is kept
// whole as the message.
func parseLogLine(raw string, now time.Time) LogEntry {
	e := LogEntry{TS: now, Msg: raw}
	f := strings.SplitN(raw, "\t", 5)
	if len(f) < 4 {
		return e
	}
	if _, err := logging.LevelFromString(strings.ToLower(f[1])); err != nil {
		return e
	}
	if ts, err := time.Parse(time.RFC3339Nano, f[0]); err == nil {
		e.TS = ts
	}
	e.Level = strings.ToLower(f[1])
	e.Logger = f[2]
	e.Msg = f[len(f)-1]
	return e
}

// Capture tees go-log output at level and above into b until ctx is done.
// The pipe blocks loggers when nobody reads it, so the copy runs for the
// whole lifetime of ctx.
func (b *LogBuffer) Capture(ctx context.Context, level string) {
	lvl, err := logging.LevelFromString(level)
	if err != nil {
		lvl = logging.LevelInfo
	}
	pipe := logging.NewPipeReader(
		logging.PipeFormat(logging.PlaintextOutput),
		logging.PipeLevel(lvl),
	)
	go func() {
		<-ctx.Done()
		_ = pipe.Close()
	}()
	go func() {
		_, _ = io.Copy(b, pipe)
	}()
}

func (b *LogBuffer) Snapshot() []LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entries.Snapshot()
}

// Subscribe delivers entries written from now on. A subscriber that falls
// behind misses entries rather than stalling the loggers.
func (b *LogBuffer) Subscribe() (ch chan LogEntry, cancel func()) {
	_, ch, cancel = b.follow(false)
	return ch, cancel
}

// follow registers a subscriber and, when backlog is set, returns the
// buffered entries taken under the same lock, so nothing is seen twice or
// missed in between.
func (b *LogBuffer) follow(backlog bool) (past []LogEntry, ch chan LogEntry, cancel func()) {
	ch = make(chan LogEntry, 64)

	b.mu.Lock()
	if backlog {
		past = b.entries.Snapshot()
	}
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel = func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			close(ch)
			b.mu.Unlock()
		})
	}
	return past, ch, cancel
}

// ServeLogsJSON answers GET /api/logs with the buffered entries.
func (b *LogBuffer) ServeLogsJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(b.Snapshot())
}

// ServeLogsSSE streams entries as server-sent events. With ?backlog=1 the
// buffered entries are sent first.
func (b *LogBuffer) ServeLogsSSE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	past, ch, cancel := b.follow(r.URL.Query().Get("backlog") == "1")
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	for _, e := range past {
		writeLogEvent(w, e)
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			writeLogEvent(w, e)
			flusher.Flush()
		}
	}
}

func writeLogEvent(w io.Writer, e LogEntry) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: log\ndata: %s\n\n", data)
}
