// internal/viewer/routes/register.go
package routes

import (
	"net/http"

	logging "github.com/ipfs/go-log/v2"

	"github.com/petervdpas/folio/internal/config"
	"github.com/petervdpas/folio/internal/editor"
	"github.com/petervdpas/folio/internal/events"
	"github.com/petervdpas/folio/internal/portfolio"
)

var log = logging.Logger("folio/viewer")

type Logs interface {
	ServeLogsJSON(w http.ResponseWriter, r *http.Request)
	ServeLogsSSE(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Session *editor.Session
	Hub     *events.Hub
	Pages   *portfolio.Library
	Logs    Logs

	Cfg     config.Config
	BaseURL string
}

func Register(mux *http.ServeMux, d Deps) {
	registerAPILogRoutes(mux, d)
	registerOpenAPIRoutes(mux)

	registerHomeRoutes(mux, d)
	registerIDERoutes(mux, d)
	registerProjectRoutes(mux, d)
	registerEditorRoutes(mux, d)
	registerExportRoutes(mux, d)
	registerEventRoutes(mux, d)
}
