// internal/viewer/routes/editor.go

package routes

import (
	"net/http"
	"strconv"

	"github.com/petervdpas/folio/internal/highlight"
	"github.com/petervdpas/folio/internal/runner"
)

// bufferRequest carries editor text. FileID and Seq are only read by
// /api/buffer.
type bufferRequest struct {
	Text   string `json:"text"`
	FileID string `json:"file_id,omitempty"`
	Seq    int64  `json:"seq,omitempty"`
}

type checkResponse struct {
	runner.Report
	Lines []runner.Line `json:"lines"`
}

func registerEditorRoutes(mux *http.ServeMux, d Deps) {
	s := d.Session

	handleMutation(mux, d, "/api/open", func(w http.ResponseWriter, r *http.Request, req nodeRequest) {
		v, err := s.Open(req.ID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, v)
	})

	// POST /api/buffer arms the autosave; the write happens once typing stops.
	// An edit for a file that is no longer open answers 409.
	handleMutation(mux, d, "/api/buffer", func(w http.ResponseWriter, r *http.Request, req bufferRequest) {
		if err := s.Edit(req.FileID, req.Text, req.Seq); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, pendingResponse{Pending: true})
	})

	handleMutation(mux, d, "/api/flush", func(w http.ResponseWriter, r *http.Request, _ struct{}) {
		writeJSON(w, flushResponse{Saved: s.Flush()})
	})

	handleGet(mux, "/api/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, err := strconv.Atoi(q.Get("from"))
		if err != nil {
			from = 0
		}
		writeJSON(w, searchResponse{Offset: s.Search(q.Get("q"), from)})
	})

	handleMutation(mux, d, "/api/run", func(w http.ResponseWriter, r *http.Request, _ struct{}) {
		writeJSON(w, runResponse{Lines: s.Run()})
	})

	handleMutation(mux, d, "/api/check", func(w http.ResponseWriter, r *http.Request, _ struct{}) {
		rep, err := s.Check()
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, checkResponse{Report: rep, Lines: rep.Lines()})
	})

	// POST /api/highlight is pure; it neither reads nor changes the session.
	handlePost(mux, "/api/highlight", func(w http.ResponseWriter, r *http.Request, req bufferRequest) {
		spans := highlight.Tokens(req.Text)
		writeJSON(w, highlightResponse{HTML: highlight.HTML(spans), Spans: spans})
	})

	handleGet(mux, "/api/suggestions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, highlight.Suggestions())
	})
}
