package workspace

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/petervdpas/folio/internal/project"
)

const (
	// ZipName is the download name of a multi-file export.
	ZipName = "lua-project.zip"
	// FallbackName is used when a single-file export has no active file.
	FallbackName = "script.lua"
	// DefaultExt is appended to exported names without an extension.
	DefaultExt = ".lua"
)

// ErrInvalidImport marks a .json upload that is not a usable project.
var ErrInvalidImport = errors.New("invalid JSON project")

// Artifact is one downloadable file.
type Artifact struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// ExportOptions controls how a multi-file project is packaged.
type ExportOptions struct {
	// Archive selects a single zip. When false, every file is exported on
	// its own with folder names folded into the file name.
	Archive bool
	Ext     string
}

// Export packages p for download. A project with at most one file exports
// the active file as plain text; otherwise a zip or a flattened file list
// is produced depending on opts.Archive.
func Export(p *project.Project, opts ExportOptions) ([]Artifact, error) {
	ext := opts.Ext
	if ext == "" {
		ext = DefaultExt
	}

	if project.CountFiles(p.Root) <= 1 {
		return []Artifact{SingleFile(p, ext)}, nil
	}
	if !opts.Archive {
		return Flatten(p, ext), nil
	}
	zipped, err := Zip(p)
	if err != nil {
		return nil, err
	}
	return []Artifact{zipped}, nil
}

// SingleFile exports the active file. With no active file it yields an
// empty script.lua.
func SingleFile(p *project.Project, ext string) Artifact {
	a := Artifact{Name: FallbackName, ContentType: "text/plain; charset=utf-8"}
	if f := p.ActiveFile(); f != nil {
		if name := project.NormalizeFileName(f.Name, ext); name != "" {
			a.Name = SafeName(name)
		}
		a.Data = []byte(f.Content)
	}
	return a
}

// Zip writes every file under its folder path. The root contributes no
// path segment. Names are passed through SafeName and repeated paths get a
// " (n)" suffix.
func Zip(p *project.Project) (Artifact, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	names := project.NewNameSet()

	var werr error
	project.WalkFiles(p.Root, func(dirs []string, f *project.Node) {
		if werr != nil {
			return
		}
		name := f.Name
		if strings.TrimSpace(name) == "" {
			name = FallbackName
		}
		fw, err := zw.Create(names.Claim(path.Join(safePath(dirs, name)...)))
		if err != nil {
			werr = err
			return
		}
		_, werr = fw.Write([]byte(f.Content))
	})
	if werr != nil {
		zw.Close()
		return Artifact{}, fmt.Errorf("write zip: %w", werr)
	}
	if err := zw.Close(); err != nil {
		return Artifact{}, fmt.Errorf("close zip: %w", err)
	}
	return Artifact{Name: ZipName, ContentType: "application/zip", Data: buf.Bytes()}, nil
}

// Flatten lists every file as its own artifact named
// "folder__sub__file.lua". Names that would repeat get a " (n)" suffix, so
// every artifact can be fetched by name.
func Flatten(p *project.Project, ext string) []Artifact {
	var out []Artifact
	names := project.NewNameSet()
	project.WalkFiles(p.Root, func(dirs []string, f *project.Node) {
		name := project.NormalizeFileName(f.Name, ext)
		if name == "" {
			name = FallbackName
		}
		out = append(out, Artifact{
			Name:        names.Claim(strings.Join(safePath(dirs, name), "__")),
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte(f.Content),
		})
	})
	return out
}

// SafeName makes a node name usable as one path segment: separators become
// "_", and a name made only of dots (".", "..") becomes "_".
func SafeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	if strings.Trim(name, ".") == "" {
		return "_"
	}
	return name
}

func safePath(dirs []string, name string) []string {
	segs := make([]string, 0, len(dirs)+1)
	for _, d := range dirs {
		segs = append(segs, SafeName(d))
	}
	return append(segs, SafeName(name))
}

// ImportKind tells the caller what an uploaded document turned into.
type ImportKind int

const (
	ImportProject ImportKind = iota
	ImportFile
)

// Import is a parsed upload.
type Import struct {
	Kind    ImportKind
	Project *project.Project // ImportProject
	Name    string           // ImportFile
	Content string           // ImportFile
}

// ParseImport interprets an uploaded document by its name. ".json" must be
// a complete project; anything else is taken as a single text file.
func ParseImport(name string, data []byte) (*Import, error) {
	name = strings.TrimSpace(path.Base(strings.ReplaceAll(name, `\`, "/")))
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		p, err := project.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
		}
		return &Import{Kind: ImportProject, Project: p}, nil
	}
	if name == "" || name == "." || name == "/" {
		name = FallbackName
	}
	return &Import{Kind: ImportFile, Name: name, Content: string(data)}, nil
}
