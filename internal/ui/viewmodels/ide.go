// internal/ui/viewmodels/ide.go

package viewmodels

import (
	"html/template"

	"github.com/petervdpas/folio/internal/editor"
	"github.com/petervdpas/folio/internal/highlight"
)

type IDEVM struct {
	BaseVM
	View        editor.View
	Highlighted template.HTML // buffer rendered for the overlay
	Suggestions []highlight.Suggestion
	Settings    IDESettings
}

// IDESettings are handed to the browser script as JSON.
type IDESettings struct {
	AutosaveMS     int    `json:"autosave_ms"`
	ArchiveEnabled bool   `json:"archive_enabled"`
	MaxImportKB    int    `json:"max_import_kb"`
	DefaultExt     string `json:"default_ext"`
	ReadOnly       bool   `json:"read_only"`
}
