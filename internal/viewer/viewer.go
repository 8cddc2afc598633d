package viewer

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/petervdpas/folio/internal/config"
	"github.com/petervdpas/folio/internal/editor"
	"github.com/petervdpas/folio/internal/events"
	"github.com/petervdpas/folio/internal/portfolio"
	"github.com/petervdpas/folio/internal/ui/assets"
	"github.com/petervdpas/folio/internal/ui/render"
	"github.com/petervdpas/folio/internal/viewer/routes"
)

var log = logging.Logger("folio/viewer")

type Viewer struct {
	Session *editor.Session
	Hub     *events.Hub
	Pages   *portfolio.Library
	Logs    *LogBuffer

	Cfg config.Config

	// canonical base URL for templates (e.g. http://127.0.0.1:8080)
	BaseURL string
}

// Handler builds the full route table.
func Handler(v Viewer) (http.Handler, error) {
	if err := render.InitTemplates(); err != nil {
		return nil, err
	}
	render.SetMinify(v.Cfg.Viewer.Minify)

	mux := http.NewServeMux()

	var static http.Handler = assetHandler(assets.Files(v.Cfg.Viewer.Minify))
	if v.Cfg.Viewer.Debug {
		static = noCache(static)
	}
	mux.Handle("/assets/", http.StripPrefix("/assets/", static))

	baseURL := v.BaseURL
	if baseURL == "" {
		baseURL = "http://" + v.Cfg.Viewer.HTTPAddr
	}

	deps := routes.Deps{
		Session: v.Session,
		Hub:     v.Hub,
		Pages:   v.Pages,
		Cfg:     v.Cfg,
		BaseURL: baseURL,
	}
	// a nil *LogBuffer must not become a non-nil interface
	if v.Logs != nil {
		deps.Logs = v.Logs
	}
	routes.Register(mux, deps)

	return mux, nil
}

// Start serves on the configured address until ctx is done, then shuts the
// server down. Long-lived streams see ctx through their request context.
func Start(ctx context.Context, v Viewer) error {
	h, err := Handler(v)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", v.Cfg.Viewer.HTTPAddr)
	if err != nil {
		return err
	}
	return Serve(ctx, ln, h)
}

// Serve runs h on ln until ctx is done.
func Serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	log.Infof("viewer listening on http://%s", ln.Addr())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		<-errCh
		log.Infof("viewer stopped")
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
