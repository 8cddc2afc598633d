package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	json "github.com/goccy/go-json"
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"

	"github.com/petervdpas/folio/internal/ui"
)

var (
	tmpl    *template.Template
	once    sync.Once
	initErr error

	minifyPages atomic.Bool
	minifier    = newMinifier()
)

func newMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &mhtml.Minifier{KeepDocumentTags: true, KeepEndTags: true, KeepQuotes: true})
	return m
}

// SetMinify switches HTML minification of rendered pages on or off.
func SetMinify(on bool) { minifyPages.Store(on) }

func InitTemplates() error {
	once.Do(func() {
		funcs := template.FuncMap{
			"isActive": func(active, key string) bool { return active == key },
			"trim":     strings.TrimSpace,
			"indent":   func(depth int) int { return 12 + depth*14 },

			// json embeds a value in a <script> block.
			"json": func(v any) (template.JS, error) {
				b, err := json.Marshal(v)
				if err != nil {
					return "", err
				}
				return template.JS(b), nil
			},

			// include renders a named template (e.g. "page.ide") and returns HTML.
			// Go templates cannot choose a template name dynamically in {{template}}.
			"include": func(name string, data any) template.HTML {
				if tmpl == nil {
					return template.HTML(`<pre class="err">templates not initialized</pre>`)
				}
				var b strings.Builder
				if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
					return template.HTML(`<pre class="err">` + html.EscapeString(err.Error()) + `</pre>`)
				}
				return template.HTML(b.String())
			},
		}

		var err error
		// ParseFS paths must match the embedded paths exactly.
		tmpl, err = template.New("root").Funcs(funcs).ParseFS(ui.TemplatesFS, "templates/*.html")
		if err != nil {
			initErr = err
			return
		}
	})
	return initErr
}

// RenderStandalone executes a named template directly (no layout wrapper).
func RenderStandalone(w http.ResponseWriter, name string, data any) {
	execute(w, name, data)
}

// Always execute the shared layout. Layout chooses the page body via .ContentTmpl.
func Render(w http.ResponseWriter, data any) {
	execute(w, "layout", data)
}

func execute(w http.ResponseWriter, name string, data any) {
	if err := InitTemplates(); err != nil {
		http.Error(w, fmt.Sprintf("template init error: %v", err), http.StatusInternalServerError)
		return
	}
	if tmpl == nil {
		http.Error(w, "templates not initialized", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if minifyPages.Load() {
		if small, err := minifier.Bytes("text/html", buf.Bytes()); err == nil {
			_, _ = w.Write(small)
			return
		}
	}
	_, _ = w.Write(buf.Bytes())
}
