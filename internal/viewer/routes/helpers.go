// internal/viewer/routes/helpers.go

package routes

import (
	"errors"
	"io"
	"net"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/petervdpas/folio/internal/editor"
	"github.com/petervdpas/folio/internal/project"
	"github.com/petervdpas/folio/internal/ui/viewmodels"
	"github.com/petervdpas/folio/internal/workspace"
)

func baseVM(title, active, contentTmpl string, d Deps) viewmodels.BaseVM {
	return viewmodels.BaseVM{
		Title:       title,
		Active:      active,
		SiteName:    d.Cfg.Profile.Name,
		Handle:      d.Cfg.Profile.Handle,
		ContentTmpl: contentTmpl,
		BaseURL:     d.BaseURL,
		Theme:       d.Cfg.Viewer.Theme,
		Debug:       d.Cfg.Viewer.Debug,
	}
}

func isLocalRequest(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return false
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// readOnly reports whether r may not change the project.
func readOnly(d Deps, r *http.Request) bool {
	return d.Cfg.Viewer.IDELocalOnly && !isLocalRequest(r)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, project.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrCycle), errors.Is(err, project.ErrRootImmutable),
		errors.Is(err, editor.ErrStaleEdit):
		return http.StatusConflict
	case errors.Is(err, editor.ErrClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, project.ErrNotFolder), errors.Is(err, project.ErrNotFile),
		errors.Is(err, project.ErrEmptyName), errors.Is(err, editor.ErrNoActiveFile),
		errors.Is(err, workspace.ErrInvalidImport):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeErr(w http.ResponseWriter, err error) {
	writeError(w, errorStatus(err), err.Error())
}

func handleGet(mux *http.ServeMux, path string, fn http.HandlerFunc) {
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		fn(w, r)
	})
}

// handlePost decodes a JSON body into T before calling fn. An empty body
// leaves T at its zero value.
func handlePost[T any](mux *http.ServeMux, path string, fn func(http.ResponseWriter, *http.Request, T)) {
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req T
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		fn(w, r, req)
	})
}

// handleMutation is handlePost for requests that change the project; they
// are refused when the IDE is restricted to local clients.
func handleMutation[T any](mux *http.ServeMux, d Deps, path string, fn func(http.ResponseWriter, *http.Request, T)) {
	handlePost(mux, path, func(w http.ResponseWriter, r *http.Request, req T) {
		if readOnly(d, r) {
			writeError(w, http.StatusForbidden, "the IDE is read-only for remote clients")
			return
		}
		fn(w, r, req)
	})
}
