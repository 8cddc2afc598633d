// internal/viewer/routes/ide.go

package routes

import (
	"html/template"
	"net/http"

	"github.com/petervdpas/folio/internal/highlight"
	"github.com/petervdpas/folio/internal/ui/render"
	"github.com/petervdpas/folio/internal/ui/viewmodels"
)

func registerIDERoutes(mux *http.ServeMux, d Deps) {
	// GET /ide renders the editor with the current project baked in so the
	// first paint does not wait for /api/project.
	handleGet(mux, "/ide", func(w http.ResponseWriter, r *http.Request) {
		v := d.Session.View()
		vm := viewmodels.IDEVM{
			BaseVM:      baseVM("Lua IDE", "ide", "page.ide", d),
			View:        v,
			Highlighted: template.HTML(highlight.HTML(highlight.Tokens(v.Buffer))),
			Suggestions: highlight.Suggestions(),
			Settings: viewmodels.IDESettings{
				AutosaveMS:     d.Cfg.Editor.AutosaveMS,
				ArchiveEnabled: d.Cfg.Editor.ArchiveEnabled,
				MaxImportKB:    d.Cfg.Editor.MaxImportKB,
				DefaultExt:     d.Cfg.Editor.DefaultExt,
				ReadOnly:       readOnly(d, r),
			},
		}
		render.Render(w, vm)
	})
}
