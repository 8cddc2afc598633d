// internal/viewer/routes/openapi.go

package routes

import (
	"net/http"

	"github.com/swaggo/swag"

	"github.com/petervdpas/folio/internal/apidocs"
)

func registerOpenAPIRoutes(mux *http.ServeMux) {
	handleGet(mux, "/api/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc(apidocs.SwaggerInfo.InstanceName())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(doc))
	})
}
