// Package events fans IDE state changes out to connected browsers.
package events

import (
	"sync"
	"time"

	"github.com/petervdpas/folio/internal/util"
)

type Type string

const (
	TreeChanged Type = "tree"    // structure, names, collapse or active file
	Saved       Type = "saved"   // the project was written to storage
	Output      Type = "output"  // console lines from run/check/import/export
	Replaced    Type = "replace" // the whole project was swapped by an import
	Pages       Type = "pages"   // portfolio pages were reloaded from disk
)

type Event struct {
	Type Type      `json:"type"`
	TS   time.Time `json:"ts"`
	Data any       `json:"data,omitempty"`
}

// Hub delivers events to subscribers. Each subscriber has a small buffer;
// a slow reader misses events rather than blocking publishers. The last
// few events are kept so a fresh client can catch up.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	recent *util.RingBuffer[Event]
}

func NewHub(history int) *Hub {
	if history <= 0 {
		history = 32
	}
	return &Hub{
		subs:   make(map[chan Event]struct{}),
		recent: util.NewRingBuffer[Event](history),
	}
}

// Publish stamps e and sends it to every subscriber.
func (h *Hub) Publish(t Type, data any) {
	e := Event{Type: t, TS: time.Now(), Data: data}
	h.recent.Push(e)

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
			// drop on slow subscriber
		}
	}
}

// Recent returns the retained history, oldest first.
func (h *Hub) Recent() []Event {
	return h.recent.Snapshot()
}

func (h *Hub) Subscribe() (ch chan Event, cancel func()) {
	ch = make(chan Event, 64)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel = func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Subscribers reports how many clients are listening.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}
