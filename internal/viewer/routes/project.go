// internal/viewer/routes/project.go

package routes

import (
	"net/http"
)

type nodeRequest struct {
	ID string `json:"id"`
}

type createRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

type renameRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type moveRequest struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

// Every tree mutation answers with the refreshed editor view.
func registerProjectRoutes(mux *http.ServeMux, d Deps) {
	s := d.Session

	handleGet(mux, "/api/project", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.View())
	})

	handleMutation(mux, d, "/api/files", func(w http.ResponseWriter, r *http.Request, req createRequest) {
		if _, err := s.CreateFile(req.ParentID, req.Name); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s.View())
	})

	handleMutation(mux, d, "/api/folders", func(w http.ResponseWriter, r *http.Request, req createRequest) {
		if _, err := s.CreateFolder(req.ParentID, req.Name); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s.View())
	})

	handleMutation(mux, d, "/api/rename", func(w http.ResponseWriter, r *http.Request, req renameRequest) {
		if _, err := s.Rename(req.ID, req.Name); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s.View())
	})

	handleMutation(mux, d, "/api/move", func(w http.ResponseWriter, r *http.Request, req moveRequest) {
		if err := s.Move(req.SourceID, req.TargetID); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s.View())
	})

	handleMutation(mux, d, "/api/delete", func(w http.ResponseWriter, r *http.Request, req nodeRequest) {
		if err := s.Delete(req.ID); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s.View())
	})

	handleMutation(mux, d, "/api/toggle", func(w http.ResponseWriter, r *http.Request, req nodeRequest) {
		if _, err := s.ToggleFolder(req.ID); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s.View())
	})

	handleMutation(mux, d, "/api/select", func(w http.ResponseWriter, r *http.Request, req nodeRequest) {
		s.SelectFolder(req.ID)
		writeJSON(w, s.View())
	})
}
