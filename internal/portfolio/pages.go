// Package portfolio holds the landing page content: markdown pages shown in
// the stacked windows, the boot sequence and the animation timings the
// browser script plays back.
package portfolio

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/petervdpas/folio/internal/util"
)

//go:embed all:pages
var pagesFS embed.FS

// Page is one rendered markdown page.
type Page struct {
	Slug  string        `json:"slug"`
	Title string        `json:"title"`
	Icon  string        `json:"icon,omitempty"`
	Order int           `json:"order"`
	HTML  template.HTML `json:"html"`
}

// Site holds every page, sorted for display.
type Site struct {
	Pages  []Page
	BySlug map[string]*Page
}

// Page returns the page with slug, or nil.
func (s *Site) Page(slug string) *Page {
	if s == nil {
		return nil
	}
	return s.BySlug[slug]
}

type frontMatter struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
	Order *int   `yaml:"order"`
}

var errUnterminated = errors.New("front matter is not terminated")

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// splitFrontMatter separates a leading "---" YAML block from the body.
// Documents without one are returned unchanged.
func splitFrontMatter(data []byte) (frontMatter, []byte, error) {
	var fm frontMatter
	data = bytes.ReplaceAll(util.StripBOM(data), []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(data, []byte("---\n")) {
		return fm, data, nil
	}
	// keep the newline so an empty block still has a "\n---" terminator
	rest := data[len("---"):]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return fm, nil, errUnterminated
	}
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return fm, nil, fmt.Errorf("front matter: %w", err)
	}
	body := rest[end+len("\n---"):]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return fm, body, nil
}

// slugOf strips the numeric prefix and extension: "01-about.md" gives
// ("about", 1). Files without a numeric prefix sort last.
func slugOf(file string) (string, int) {
	name := strings.TrimSuffix(file, path.Ext(file))
	prefix, slug, ok := strings.Cut(name, "-")
	if !ok {
		return name, 1 << 20
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return name, 1 << 20
	}
	return slug, n
}

func titleOf(body []byte, fallback string) string {
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return fallback
}

// renderPage turns one markdown document into a Page.
func renderPage(md goldmark.Markdown, file string, data []byte) (Page, error) {
	fm, body, err := splitFrontMatter(data)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", file, err)
	}
	slug, order := slugOf(file)
	if fm.Order != nil {
		order = *fm.Order
	}
	title := fm.Title
	if title == "" {
		title = titleOf(body, slug)
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("%s: render: %w", file, err)
	}
	return Page{
		Slug:  slug,
		Title: title,
		Icon:  fm.Icon,
		Order: order,
		HTML:  template.HTML(buf.String()),
	}, nil
}

// readPages renders every .md file at the top of fsys. Broken pages are
// skipped and reported together in the returned error.
func readPages(md goldmark.Markdown, fsys fs.FS) ([]Page, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var (
		pages []Page
		errs  []error
	)
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".md") {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p, err := renderPage(md, e.Name(), data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pages = append(pages, p)
	}
	return pages, errors.Join(errs...)
}

// Build renders the embedded pages and then the pages of each overlay in
// turn. An overlay page replaces an earlier page with the same slug.
func Build(overlays ...fs.FS) (*Site, error) {
	md := newMarkdown()

	embedded, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		return nil, err
	}
	pages, err := readPages(md, embedded)
	if err != nil {
		return nil, fmt.Errorf("embedded pages: %w", err)
	}

	var errs []error
	for _, o := range overlays {
		more, err := readPages(md, o)
		if err != nil {
			errs = append(errs, err)
		}
		for _, p := range more {
			pages = replaceOrAppend(pages, p)
		}
	}

	site := &Site{Pages: pages, BySlug: make(map[string]*Page, len(pages))}
	sort.SliceStable(site.Pages, func(i, j int) bool {
		if site.Pages[i].Order != site.Pages[j].Order {
			return site.Pages[i].Order < site.Pages[j].Order
		}
		return site.Pages[i].Slug < site.Pages[j].Slug
	})
	// index after sorting, the slice elements have moved
	for i := range site.Pages {
		site.BySlug[site.Pages[i].Slug] = &site.Pages[i]
	}
	return site, errors.Join(errs...)
}

func replaceOrAppend(pages []Page, p Page) []Page {
	for i := range pages {
		if pages[i].Slug == p.Slug {
			pages[i] = p
			return pages
		}
	}
	return append(pages, p)
}
