package viewer

import (
	"net/http"
	"strings"
)

// assetHandler serves pre-built asset bytes by file name.
func assetHandler(files map[string][]byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/")
		data, ok := files[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentTypeForPath(name, data))
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(data)
	})
}
