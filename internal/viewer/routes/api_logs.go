// internal/viewer/routes/api_logs.go

package routes

import "net/http"

// Logs are for the site owner. When the IDE is local-only they are hidden
// from remote clients as well.
func registerAPILogRoutes(mux *http.ServeMux, d Deps) {
	if d.Logs == nil {
		return
	}
	ownerOnly := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if readOnly(d, r) {
				writeError(w, http.StatusForbidden, "logs are only available locally")
				return
			}
			h(w, r)
		}
	}
	mux.HandleFunc("/api/logs", ownerOnly(d.Logs.ServeLogsJSON))
	mux.HandleFunc("/api/logs/stream", ownerOnly(d.Logs.ServeLogsSSE))
}
