package app

import (
	"context"
	"time"

	"github.com/petervdpas/folio/internal/config"
	"github.com/petervdpas/folio/internal/editor"
	"github.com/petervdpas/folio/internal/events"
	"github.com/petervdpas/folio/internal/storage"
	"github.com/petervdpas/folio/internal/util"
	"github.com/petervdpas/folio/internal/workspace"
)

// Services is the project side of a site: its store, the workspace on top
// of it and one editing session. serve and the one-shot commands share it.
type Services struct {
	KV        storage.KV
	Workspace *workspace.Workspace
	Hub       *events.Hub
	Session   *editor.Session
}

// OpenServices opens the configured store under siteDir and loads the
// stored project into a new session.
func OpenServices(ctx context.Context, siteDir string, cfg config.Config) (*Services, error) {
	dbPath := ""
	if cfg.Storage.Driver != "memory" {
		dbPath = util.ResolvePath(siteDir, cfg.Storage.DBPath)
	}
	kv, err := storage.OpenKV(cfg.Storage.Driver, dbPath)
	if err != nil {
		return nil, err
	}

	ws := workspace.New(kv, cfg.Storage.ProjectKey)
	hub := events.NewHub(32)
	s := editor.New(ws.Load(ctx), ws, hub, editor.Options{
		Autosave:   time.Duration(cfg.Editor.AutosaveMS) * time.Millisecond,
		DefaultExt: cfg.Editor.DefaultExt,
		Archive:    cfg.Editor.ArchiveEnabled,
	})

	return &Services{KV: kv, Workspace: ws, Hub: hub, Session: s}, nil
}

// Close writes any pending edit, then releases the hub and the store.
func (s *Services) Close() error {
	s.Session.Close()
	s.Hub.Close()
	return s.KV.Close()
}
