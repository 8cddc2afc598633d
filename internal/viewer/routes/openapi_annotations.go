// Package routes: swaggo annotation stubs.
// Each function below is a documentation stub only; the real handler logic lives
// in the closures passed to handlePost/handleGet/handleMutation.
// Regenerate ../../apidocs with swag init after changing them.
package routes

import (
	"github.com/petervdpas/folio/internal/highlight"
	"github.com/petervdpas/folio/internal/runner"
)

// ── Response types ───────────────────────────────────────────────────────────

type errorResponse struct {
	Error string `json:"error" example:"Import failed: invalid JSON project"`
}

type pendingResponse struct {
	Pending bool `json:"pending" example:"true"`
}

type flushResponse struct {
	Saved bool `json:"saved"`
}

type searchResponse struct {
	Offset int `json:"offset" example:"11"`
}

type runResponse struct {
	Lines []runner.Line `json:"lines"`
}

type highlightResponse struct {
	HTML  string           `json:"html"`
	Spans []highlight.Span `json:"spans"`
}

type exportListResponse struct {
	Files []exportedFile `json:"files"`
}

// swagBoot is a documentation stub for GET /api/boot.
//
//	@Summary	Boot sequence and animation timings
//	@Tags		portfolio
//	@Produce	json
//	@Success	200	{object}	portfolio.Boot
//	@Router		/api/boot [get]
func swagBoot() {}

// swagPages is a documentation stub for GET /api/pages.
//
//	@Summary	List portfolio pages
//	@Tags		portfolio
//	@Produce	json
//	@Success	200	{array}	portfolio.Page
//	@Router		/api/pages [get]
func swagPages() {}

// swagPage is a documentation stub for GET /api/pages/{slug}.
//
//	@Summary	One portfolio page
//	@Tags		portfolio
//	@Produce	json
//	@Param		slug	path	string	true	"Page slug"
//	@Success	200	{object}	portfolio.Page
//	@Router		/api/pages/{slug} [get]
func swagPage() {}

// swagProject is a documentation stub for GET /api/project.
//
//	@Summary	Current project tree, open file and buffer
//	@Tags		project
//	@Produce	json
//	@Success	200	{object}	editor.View
//	@Router		/api/project [get]
func swagProject() {}

// swagCreateFile is a documentation stub for POST /api/files.
//
//	@Summary	Create a file and open it
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		body	body	createRequest	true	"Name and optional parent"
//	@Success	200	{object}	editor.View
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/files [post]
func swagCreateFile() {}

// swagCreateFolder is a documentation stub for POST /api/folders.
//
//	@Summary	Create a folder
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		body	body	createRequest	true	"Name and optional parent"
//	@Success	200	{object}	editor.View
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/folders [post]
func swagCreateFolder() {}

// swagRename is a documentation stub for POST /api/rename.
//
//	@Summary	Rename a node (root refused)
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		body	body	renameRequest	true	"Node and new name"
//	@Success	200	{object}	editor.View
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/rename [post]
func swagRename() {}

// swagMove is a documentation stub for POST /api/move.
//
//	@Summary	Move a node into a folder or before a file
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		body	body	moveRequest	true	"Source and drop target"
//	@Success	200	{object}	editor.View
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/move [post]
func swagMove() {}

// swagDelete is a documentation stub for POST /api/delete.
//
//	@Summary	Delete a node and its subtree
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		body	body	nodeRequest	true	"Node"
//	@Success	200	{object}	editor.View
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/delete [post]
func swagDelete() {}

// swagToggle is a documentation stub for POST /api/toggle.
//
//	@Summary	Collapse or expand a folder
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		body	body	nodeRequest	true	"Folder"
//	@Success	200	{object}	editor.View
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/toggle [post]
func swagToggle() {}

// swagSelect is a documentation stub for POST /api/select.
//
//	@Summary	Select the target folder for create actions
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		body	body	nodeRequest	true	"Node"
//	@Success	200	{object}	editor.View
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/select [post]
func swagSelect() {}

// swagOpen is a documentation stub for POST /api/open.
//
//	@Summary	Open a file in the editor
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		body	body	nodeRequest	true	"File"
//	@Success	200	{object}	editor.View
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/open [post]
func swagOpen() {}

// swagBuffer is a documentation stub for POST /api/buffer.
//
//	@Summary	Replace the editor buffer and arm autosave
//	@Tags		editor
//	@Accept		json
//	@Produce	json
//	@Param		body	body	bufferRequest	true	"Buffer text, open file id and edit sequence"
//	@Success	200	{object}	pendingResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Failure	409	{object}	errorResponse
//	@Router		/api/buffer [post]
func swagBuffer() {}

// swagFlush is a documentation stub for POST /api/flush.
//
//	@Summary	Write a pending autosave now
//	@Tags		editor
//	@Produce	json
//	@Success	200	{object}	flushResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/flush [post]
func swagFlush() {}

// swagSearch is a documentation stub for GET /api/search.
//
//	@Summary	Find text in the buffer, wrapping to the start
//	@Tags		editor
//	@Produce	json
//	@Param		q	query	string	true	"Search term"
//	@Param		from	query	int	false	"Start offset in UTF-16 code units"
//	@Success	200	{object}	searchResponse
//	@Router		/api/search [get]
func swagSearch() {}

// swagRun is a documentation stub for POST /api/run.
//
//	@Summary	Echo print/warn/error string literals of the open file
//	@Tags		editor
//	@Produce	json
//	@Success	200	{object}	runResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/run [post]
func swagRun() {}

// swagCheck is a documentation stub for POST /api/check.
//
//	@Summary	Syntax check the open file without running it
//	@Tags		editor
//	@Produce	json
//	@Success	200	{object}	checkResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/check [post]
func swagCheck() {}

// swagHighlight is a documentation stub for POST /api/highlight.
//
//	@Summary	Highlight Lua source for the editor overlay
//	@Tags		editor
//	@Accept		json
//	@Produce	json
//	@Param		body	body	bufferRequest	true	"Source text"
//	@Success	200	{object}	highlightResponse
//	@Router		/api/highlight [post]
func swagHighlight() {}

// swagSuggestions is a documentation stub for GET /api/suggestions.
//
//	@Summary	Quick-insert snippets
//	@Tags		editor
//	@Produce	json
//	@Success	200	{array}	highlight.Suggestion
//	@Router		/api/suggestions [get]
func swagSuggestions() {}

// swagExport is a documentation stub for GET /api/export.
//
//	@Summary	Download the project (zip or single file)
//	@Tags		archive
//	@Produce	octet-stream
//	@Success	200	{file}	binary
//	@Router		/api/export [get]
func swagExport() {}

// swagExportFiles is a documentation stub for GET /api/export/files.
//
//	@Summary	List the flattened export files
//	@Tags		archive
//	@Produce	json
//	@Success	200	{object}	exportListResponse
//	@Router		/api/export/files [get]
func swagExportFiles() {}

// swagExportFile is a documentation stub for GET /api/export/file.
//
//	@Summary	Download one flattened export file
//	@Tags		archive
//	@Produce	octet-stream
//	@Param		name	query	string	true	"File name from /api/export/files"
//	@Success	200	{file}	binary
//	@Router		/api/export/file [get]
func swagExportFile() {}

// swagImport is a documentation stub for POST /api/import.
//
//	@Summary	Import a .json project or a single source file
//	@Tags		archive
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"Project JSON or source file"
//	@Success	200	{object}	editor.ImportResult
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/import [post]
func swagImport() {}

// swagEvents is a documentation stub for GET /api/events.
//
//	@Summary	Websocket stream of IDE events
//	@Tags		events
//	@Produce	json
//	@Success	200	{string}	string	"websocket upgrade"
//	@Router		/api/events [get]
func swagEvents() {}

// swagRecentEvents is a documentation stub for GET /api/events/recent.
//
//	@Summary	Last events kept by the hub
//	@Tags		events
//	@Produce	json
//	@Success	200	{array}	object
//	@Router		/api/events/recent [get]
func swagRecentEvents() {}
