// internal/viewer/routes/home.go

package routes

import (
	"net/http"
	"strings"

	"github.com/petervdpas/folio/internal/portfolio"
	"github.com/petervdpas/folio/internal/ui/render"
	"github.com/petervdpas/folio/internal/ui/viewmodels"
)

func registerHomeRoutes(mux *http.ServeMux, d Deps) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		vm := viewmodels.HomeVM{
			BaseVM:  baseVM("Home", "home", "page.home", d),
			Tagline: d.Cfg.Profile.Tagline,
			Socials: viewmodels.BuildSocials(d.Cfg.Profile.Socials),
			Pages:   sitePages(d),
			Boot:    portfolio.NewBoot(d.Cfg.Profile.Handle),
		}
		render.Render(w, vm)
	})

	handleGet(mux, "/api/boot", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, portfolio.NewBoot(d.Cfg.Profile.Handle))
	})

	// GET /api/pages lists every page; /api/pages/{slug} returns one.
	handleGet(mux, "/api/pages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, sitePages(d))
	})
	handleGet(mux, "/api/pages/", func(w http.ResponseWriter, r *http.Request) {
		slug := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/pages/"), "/")
		if d.Pages == nil {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}
		p := d.Pages.Site().Page(slug)
		if p == nil {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}
		writeJSON(w, p)
	})
}

func sitePages(d Deps) []portfolio.Page {
	if d.Pages == nil || d.Pages.Site() == nil {
		return []portfolio.Page{}
	}
	return d.Pages.Site().Pages
}
