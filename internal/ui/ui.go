// Package ui embeds the viewer's HTML templates. Static assets live in the
// assets subpackage.
package ui

import "embed"

//go:embed templates/*.html
var TemplatesFS embed.FS
