package app

import (
	"context"
	stdlog "log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/petervdpas/folio/internal/config"
	"github.com/petervdpas/folio/internal/events"
	"github.com/petervdpas/folio/internal/portfolio"
	"github.com/petervdpas/folio/internal/util"
	"github.com/petervdpas/folio/internal/viewer"
)

type Options struct {
	SiteDir string
	CfgPath string
	Cfg     config.Config

	// OpenBrowser opens the site once the viewer accepts connections.
	OpenBrowser bool
	Progress    func(step, total int, label string)
}

// Run serves the site until ctx is done. The viewer and the page watcher
// run in one errgroup; the first to fail stops the other.
func Run(ctx context.Context, opt Options) error {
	cfg := opt.Cfg

	SetupLogging(cfg.Log)
	logs := viewer.NewLogBuffer(800)
	logs.Capture(ctx, cfg.Log.Level)
	stdlog.SetOutput(logs)

	logBanner(opt.SiteDir, opt.CfgPath, cfg)

	progress := opt.Progress
	if progress == nil {
		progress = func(int, int, string) {}
	}
	step, total := 0, 4

	step++
	progress(step, total, "Opening storage")

	svc, err := OpenServices(ctx, opt.SiteDir, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			log.Warnf("close storage: %v", err)
		}
	}()

	step++
	progress(step, total, "Loading pages")

	lib, err := portfolio.NewLibrary(pagesDir(opt.SiteDir, cfg))
	if err != nil {
		return err
	}
	lib.OnChange(func(site *portfolio.Site) {
		slugs := make([]string, 0, len(site.Pages))
		for _, p := range site.Pages {
			slugs = append(slugs, p.Slug)
		}
		svc.Hub.Publish(events.Pages, slugs)
	})
	log.Infof("%d page(s) loaded", len(lib.Site().Pages))

	step++
	progress(step, total, "Starting viewer")

	addr, url := NormalizeLocalViewer(cfg.Viewer.HTTPAddr)
	cfg.Viewer.HTTPAddr = addr

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return viewer.Start(gctx, viewer.Viewer{
			Session: svc.Session,
			Hub:     svc.Hub,
			Pages:   lib,
			Logs:    logs,
			Cfg:     cfg,
			BaseURL: url,
		})
	})

	if cfg.Portfolio.Watch && lib.Dir() != "" {
		g.Go(func() error {
			if err := lib.Watch(gctx); err != nil {
				log.Warnf("page watcher stopped: %v", err)
			}
			return nil
		})
	}

	if opt.OpenBrowser {
		g.Go(func() error {
			if err := WaitTCP(strings.TrimPrefix(url, "http://"), 5*time.Second); err != nil {
				log.Warnf("viewer not reachable: %v", err)
				return nil
			}
			if err := util.OpenURL(url); err != nil {
				log.Warnf("open browser: %v", err)
			}
			return nil
		})
	}

	step++
	progress(step, total, "Online")
	log.Infof("🌐 Portfolio: %s", url)
	log.Infof("🛠  IDE:       %s/ide", url)

	err = g.Wait()
	log.Info("shutting down")
	return err
}
