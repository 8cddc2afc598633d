// internal/ui/viewmodels/base.go

package viewmodels

type BaseVM struct {
	Title       string
	Active      string
	SiteName    string
	Handle      string
	ContentTmpl string
	BaseURL     string
	Theme       string
	Debug       bool
}
