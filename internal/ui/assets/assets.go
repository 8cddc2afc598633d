// internal/ui/assets/assets.go

package assets

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

var log = logging.Logger("folio/viewer")

// Everything served under /assets/.
//
//go:embed *.css *.js
var raw embed.FS

var mediaTypes = map[string]string{
	".css": "text/css",
	".js":  "application/javascript",
}

// Files returns every asset keyed by file name. With minified set, CSS and
// JS are run through the minifier; a file the minifier rejects is served
// as written.
func Files(minified bool) map[string][]byte {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)

	out := make(map[string][]byte)
	_ = fs.WalkDir(raw, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := raw.ReadFile(p)
		if err != nil {
			return nil
		}
		mt, ok := mediaTypes[strings.ToLower(path.Ext(p))]
		if !minified || !ok {
			out[p] = data
			return nil
		}
		small, err := m.Bytes(mt, data)
		if err != nil {
			log.Warnf("minify %s: %v (using original)", p, err)
			out[p] = data
			return nil
		}
		out[p] = small
		return nil
	})
	return out
}
