package workspace

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petervdpas/folio/internal/project"
	"github.com/petervdpas/folio/internal/storage"
)

type failingKV struct{ storage.KV }

func (failingKV) Set(context.Context, string, string) error { return errors.New("disk full") }

func tree() *project.Project {
	p := project.Default()
	lib, _ := p.CreateFolder("", "lib")
	deep, _ := p.CreateFolder(lib.ID, "deep")
	p.CreateFile(lib.ID, "util.lua", "return {}")
	p.CreateFile(deep.ID, "x", "print('x')")
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	ws := New(storage.NewMemory(), "")
	assert.Equal(t, DefaultKey, ws.Key())

	p := tree()
	require.NoError(t, ws.Write(ctx, p))

	got := ws.Load(ctx)
	if diff := cmp.Diff(p, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	for name, raw := range map[string]string{
		"garbage":      "not json",
		"no root":      `{"activeFileId":null}`,
		"root is file": `{"root":{"id":"root","type":"file","name":"x"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := storage.NewMemory()
			require.NoError(t, kv.Set(ctx, DefaultKey, raw))

			p := New(kv, DefaultKey).Load(ctx)
			require.Len(t, p.Root.Children, 1)
			assert.Equal(t, "Project", p.Root.Name)
			assert.Equal(t, "main.lua", p.Root.Children[0].Name)
			assert.Equal(t, p.Root.Children[0].ID, p.ActiveFileID)
		})
	}

	t.Run("missing", func(t *testing.T) {
		p := New(storage.NewMemory(), "").Load(ctx)
		assert.Equal(t, "main.lua", p.Root.Children[0].Name)
	})
}

func TestSaveSwallowsErrors(t *testing.T) {
	ws := New(failingKV{storage.NewMemory()}, "")
	assert.NotPanics(t, func() { ws.Save(context.Background(), project.Default()) })
	assert.Error(t, ws.Write(context.Background(), project.Default()))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	ws := New(storage.NewMemory(), "")
	p := tree()
	ws.Save(ctx, p)
	require.NoError(t, ws.Reset(ctx))
	assert.Len(t, ws.Load(ctx).Root.Children, 1)
}

func TestExportSingleFile(t *testing.T) {
	p := project.Default()
	p.Root.Children[0].Name = "hello"

	arts, err := Export(p, ExportOptions{Archive: true})
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, "hello.lua", arts[0].Name)
	assert.Equal(t, "print('Hello from Luau!')\n", string(arts[0].Data))

	p.ActiveFileID = ""
	arts, err = Export(p, ExportOptions{Archive: true})
	require.NoError(t, err)
	assert.Equal(t, FallbackName, arts[0].Name)
	assert.Empty(t, arts[0].Data)
}

func TestExportZip(t *testing.T) {
	arts, err := Export(tree(), ExportOptions{Archive: true})
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, ZipName, arts[0].Name)
	assert.Equal(t, "application/zip", arts[0].ContentType)

	assert.Equal(t, map[string]string{
		"main.lua":     "print('Hello from Luau!')\n",
		"lib/util.lua": "return {}",
		"lib/deep/x":   "print('x')",
	}, unzip(t, arts[0].Data))
}

func unzip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	files := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		_, dup := files[f.Name]
		require.False(t, dup, "duplicate entry %q", f.Name)
		files[f.Name] = string(b)
	}
	return files
}

// hostile is what a crafted backup can hold: names with separators, dot
// segments and a flattened-name clash.
func hostile(t *testing.T) *project.Project {
	t.Helper()
	p := project.Default()
	up, err := p.CreateFolder("", "../../etc")
	require.NoError(t, err)
	_, err = p.CreateFile(up.ID, "x.lua", "evil")
	require.NoError(t, err)
	dots, err := p.CreateFolder("", "..")
	require.NoError(t, err)
	_, err = p.CreateFile(dots.ID, `..\win.lua`, "win")
	require.NoError(t, err)
	a, err := p.CreateFolder("", "a")
	require.NoError(t, err)
	_, err = p.CreateFile(a.ID, "b.lua", "nested")
	require.NoError(t, err)
	_, err = p.CreateFile("", "a__b.lua", "flat")
	require.NoError(t, err)
	_, err = p.CreateFile("", "/abs.lua", "abs")
	require.NoError(t, err)

	// the same tree must survive a JSON round trip unchanged
	doc, err := project.Encode(p)
	require.NoError(t, err)
	imp, err := ParseImport("backup.json", doc)
	require.NoError(t, err)
	return imp.Project
}

func TestZipKeepsEntriesInsideTheArchive(t *testing.T) {
	art, err := Zip(hostile(t))
	require.NoError(t, err)

	files := unzip(t, art.Data)
	for name := range files {
		assert.True(t, filepath.IsLocal(name), "entry %q escapes", name)
		assert.NotContains(t, strings.Split(name, "/"), "..", name)
		assert.NotContains(t, name, `\`, name)
	}
	assert.Equal(t, "evil", files[".._.._etc/x.lua"])
	assert.Equal(t, "win", files["_/.._win.lua"])
	assert.Equal(t, "nested", files["a/b.lua"])
	assert.Equal(t, "flat", files["a__b.lua"])
	assert.Equal(t, "abs", files["_abs.lua"])
}

func TestFlattenNamesAreSafeAndUnique(t *testing.T) {
	arts := Flatten(hostile(t), DefaultExt)

	got := map[string]string{}
	for _, a := range arts {
		assert.True(t, filepath.IsLocal(a.Name), "artifact %q escapes", a.Name)
		assert.NotContains(t, a.Name, "/", a.Name)
		assert.NotContains(t, a.Name, `\`, a.Name)
		_, dup := got[a.Name]
		require.False(t, dup, "duplicate artifact %q", a.Name)
		got[a.Name] = string(a.Data)
	}
	assert.Equal(t, "evil", got[".._.._etc__x.lua"])
	assert.Equal(t, "win", got["___.._win.lua"])
	assert.Equal(t, "nested", got["a__b.lua"])
	assert.Equal(t, "flat", got["a__b (2).lua"])
}

func TestSafeName(t *testing.T) {
	for in, want := range map[string]string{
		"main.lua":  "main.lua",
		"..":        "_",
		".":         "_",
		"  ...  ":   "_",
		"../../etc": ".._.._etc",
		`a\b`:       "a_b",
		"..hidden":  "..hidden",
		"":          "_",
	} {
		assert.Equal(t, want, SafeName(in), in)
	}
}

func TestExportFlattened(t *testing.T) {
	arts, err := Export(tree(), ExportOptions{Archive: false})
	require.NoError(t, err)

	var got []string
	for _, a := range arts {
		got = append(got, a.Name)
	}
	assert.Equal(t, []string{"main.lua", "lib__util.lua", "lib__deep__x.lua"}, got)
}

func TestParseImport(t *testing.T) {
	doc, err := project.Encode(tree())
	require.NoError(t, err)

	imp, err := ParseImport("backup.JSON", doc)
	require.NoError(t, err)
	assert.Equal(t, ImportProject, imp.Kind)
	assert.Equal(t, 3, project.CountFiles(imp.Project.Root))

	_, err = ParseImport("backup.json", []byte(`{"root":{"type":"file"}}`))
	assert.ErrorIs(t, err, ErrInvalidImport)

	imp, err = ParseImport(`C:\tmp\tool.lua`, []byte("print('t')"))
	require.NoError(t, err)
	assert.Equal(t, ImportFile, imp.Kind)
	assert.Equal(t, "tool.lua", imp.Name)
	assert.Equal(t, "print('t')", imp.Content)
}
