// Package workspace persists the IDE project in a key-value store and turns
// it into downloadable artifacts.
package workspace

import (
	"context"
	"errors"

	logging "github.com/ipfs/go-log/v2"

	"github.com/petervdpas/folio/internal/project"
	"github.com/petervdpas/folio/internal/storage"
)

var log = logging.Logger("folio/workspace")

// DefaultKey is the entry the project document lives under.
const DefaultKey = "lua_project_v1"

// Workspace reads and writes one project document under a fixed key.
type Workspace struct {
	kv  storage.KV
	key string
}

func New(kv storage.KV, key string) *Workspace {
	if key == "" {
		key = DefaultKey
	}
	return &Workspace{kv: kv, key: key}
}

// Key returns the storage key in use.
func (w *Workspace) Key() string { return w.key }

// Load returns the stored project. A missing, unreadable or malformed entry
// yields the default project; the reason is logged, never returned.
func (w *Workspace) Load(ctx context.Context) *project.Project {
	raw, err := w.kv.Get(ctx, w.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Infof("no stored project under %q, starting from default", w.key)
		} else {
			log.Warnf("read project %q: %v", w.key, err)
		}
		return project.Default()
	}
	p, err := project.Decode([]byte(raw))
	if err != nil {
		log.Warnf("stored project %q discarded: %v", w.key, err)
		return project.Default()
	}
	return p
}

// Write encodes and stores p, returning any failure.
func (w *Workspace) Write(ctx context.Context, p *project.Project) error {
	b, err := project.Encode(p)
	if err != nil {
		return err
	}
	return w.kv.Set(ctx, w.key, string(b))
}

// Save is the best-effort variant of Write used after every user action.
// Failures are logged and otherwise ignored.
func (w *Workspace) Save(ctx context.Context, p *project.Project) {
	if err := w.Write(ctx, p); err != nil {
		log.Warnf("save project %q: %v", w.key, err)
	}
}

// Reset removes the stored document so the next Load yields the default.
func (w *Workspace) Reset(ctx context.Context) error {
	return w.kv.Delete(ctx, w.key)
}
