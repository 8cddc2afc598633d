// internal/viewer/routes/export.go

package routes

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/petervdpas/folio/internal/util"
	"github.com/petervdpas/folio/internal/workspace"
)

type exportedFile struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

func writeArtifact(w http.ResponseWriter, a workspace.Artifact) {
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, util.SafeFileName(a.Name)))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(a.Data)
}

func registerExportRoutes(mux *http.ServeMux, d Deps) {
	s := d.Session

	// GET /api/export downloads the zip or the single file. When archiving
	// is off and the project has several files, the file list is returned
	// instead and each file is fetched from /api/export/file. Only the owner's
	// export flushes the buffer; read-only clients get a copy.
	handleGet(mux, "/api/export", func(w http.ResponseWriter, r *http.Request) {
		export := s.Export
		if readOnly(d, r) {
			export = s.ExportCopy
		}
		arts, err := export()
		if err != nil {
			writeErr(w, err)
			return
		}
		if len(arts) == 1 {
			writeArtifact(w, arts[0])
			return
		}
		writeJSON(w, exportListResponse{Files: listArtifacts(arts)})
	})

	handleGet(mux, "/api/export/files", func(w http.ResponseWriter, r *http.Request) {
		arts := workspace.Flatten(s.Project(), d.Cfg.Editor.DefaultExt)
		writeJSON(w, exportListResponse{Files: listArtifacts(arts)})
	})

	handleGet(mux, "/api/export/file", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		for _, a := range workspace.Flatten(s.Project(), d.Cfg.Editor.DefaultExt) {
			if a.Name == name {
				writeArtifact(w, a)
				return
			}
		}
		writeError(w, http.StatusNotFound, "no exported file named "+name)
	})

	// POST /api/import takes one multipart "file". A .json upload replaces
	// the project; anything else is added as a file and opened.
	mux.HandleFunc("/api/import", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if readOnly(d, r) {
			writeError(w, http.StatusForbidden, "the IDE is read-only for remote clients")
			return
		}

		limit := int64(d.Cfg.Editor.MaxImportKB) << 10
		if limit <= 0 {
			limit = 1 << 20
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit+64<<10)
		if err := r.ParseMultipartForm(limit); err != nil {
			writeError(w, http.StatusBadRequest, "Import failed: "+err.Error())
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Import failed: missing file")
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, limit+1))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Import failed: "+err.Error())
			return
		}
		if int64(len(data)) > limit {
			writeError(w, http.StatusRequestEntityTooLarge, "Import failed: file too large")
			return
		}

		res, err := s.Import(util.SafeFileName(hdr.Filename), data)
		if err != nil {
			msg := "Import failed: " + err.Error()
			if errors.Is(err, workspace.ErrInvalidImport) {
				msg = "Import failed: " + workspace.ErrInvalidImport.Error()
			}
			writeError(w, errorStatus(err), msg)
			return
		}
		log.Infof("imported %s (%d bytes)", res.Name, len(data))
		writeJSON(w, res)
	})
}

func listArtifacts(arts []workspace.Artifact) []exportedFile {
	out := make([]exportedFile, 0, len(arts))
	for _, a := range arts {
		out = append(out, exportedFile{Name: a.Name, Size: len(a.Data)})
	}
	return out
}
