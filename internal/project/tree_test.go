package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample builds:
//
//	root
//	├── main.lua
//	├── lib/
//	│   ├── util.lua
//	│   └── deep/
//	│       └── x.lua
//	└── b.lua
func sample() *Project {
	p := &Project{Root: &Node{ID: RootID, Type: KindFolder, Name: "Project"}}
	p.Root.Children = []*Node{
		{ID: "main", Type: KindFile, Name: "main.lua", Content: "print('hi')"},
		{ID: "lib", Type: KindFolder, Name: "lib", Children: []*Node{
			{ID: "util", Type: KindFile, Name: "util.lua"},
			{ID: "deep", Type: KindFolder, Name: "deep", Children: []*Node{
				{ID: "x", Type: KindFile, Name: "x.lua", Content: "x"},
			}},
		}},
		{ID: "b", Type: KindFile, Name: "b.lua"},
	}
	p.ActiveFileID = "main"
	return p
}

func names(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestFindByIDAndParent(t *testing.T) {
	p := sample()

	assert.Equal(t, "x.lua", FindByID(p.Root, "x").Name)
	assert.Nil(t, FindByID(p.Root, "nope"))
	assert.Same(t, p.Root, FindByID(p.Root, RootID))

	assert.Equal(t, "deep", FindParentOf(p.Root, "x").ID)
	assert.Same(t, p.Root, FindParentOf(p.Root, "lib"))
	assert.Nil(t, FindParentOf(p.Root, RootID))
	assert.Nil(t, FindParentOf(p.Root, "nope"))
}

func TestDetachPreservesOrder(t *testing.T) {
	p := sample()

	n := Detach(p.Root, "lib")
	require.NotNil(t, n)
	assert.Equal(t, []string{"main.lua", "b.lua"}, names(p.Root.Children))
	assert.Nil(t, FindByID(p.Root, "x"))

	assert.Nil(t, Detach(p.Root, RootID))
	assert.Nil(t, Detach(p.Root, "lib"))
}

func TestAttachIntoFolderExpands(t *testing.T) {
	folder := NewFolder("f")
	folder.Collapsed = true
	AttachIntoFolder(folder, NewFile("a.lua", ""))
	assert.False(t, folder.Collapsed)
	assert.Len(t, folder.Children, 1)
}

func TestContainsID(t *testing.T) {
	p := sample()
	lib := FindByID(p.Root, "lib")
	assert.True(t, ContainsID(lib, "lib"))
	assert.True(t, ContainsID(lib, "x"))
	assert.False(t, ContainsID(lib, "main"))
	assert.False(t, ContainsID(nil, "x"))
}

func TestUniqueChildName(t *testing.T) {
	folder := NewFolder("f")
	for _, want := range []string{"a.lua", "a (2).lua", "a (3).lua"} {
		got := UniqueChildName(folder, "a.lua")
		assert.Equal(t, want, got)
		folder.Children = append(folder.Children, NewFile(got, ""))
	}

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, "A (4).LUA", UniqueChildName(folder, "A.LUA"))
	})
	t.Run("no extension", func(t *testing.T) {
		folder.Children = append(folder.Children, NewFolder("src"))
		assert.Equal(t, "src (2)", UniqueChildName(folder, "src"))
	})
	t.Run("last dot splits", func(t *testing.T) {
		folder.Children = append(folder.Children, NewFile("x.test.lua", ""))
		assert.Equal(t, "x.test (2).lua", UniqueChildName(folder, "x.test.lua"))
	})
}

func TestNameSetClaim(t *testing.T) {
	names := NewNameSet()
	assert.Equal(t, "a__b.lua", names.Claim("a__b.lua"))
	assert.Equal(t, "a__b (2).lua", names.Claim("A__B.lua"))
	assert.True(t, names.Has("a__B (2).LUA"))

	// only a dot in the last path segment starts the extension
	assert.Equal(t, "v1.0/util", names.Claim("v1.0/util"))
	assert.Equal(t, "v1.0/util (2)", names.Claim("v1.0/util"))
}

func TestNormalizeFileName(t *testing.T) {
	assert.Equal(t, "foo.lua", NormalizeFileName("  foo ", ".lua"))
	assert.Equal(t, "foo.txt", NormalizeFileName("foo.txt", ".lua"))
	assert.Equal(t, "", NormalizeFileName("   ", ".lua"))
}

func TestCountFiles(t *testing.T) {
	assert.Equal(t, 4, CountFiles(sample().Root))
	assert.Equal(t, 0, CountFiles(NewFolder("empty")))
}

func TestWalkFilesPaths(t *testing.T) {
	var paths []string
	WalkFiles(sample().Root, func(dirs []string, f *Node) {
		p := ""
		for _, d := range dirs {
			p += d + "/"
		}
		paths = append(paths, p+f.Name)
	})
	assert.Equal(t, []string{"main.lua", "lib/util.lua", "lib/deep/x.lua", "b.lua"}, paths)
}

func TestFlattenHonoursCollapsed(t *testing.T) {
	p := sample()
	rows := Flatten(p.Root, p.ActiveFileID)
	require.Len(t, rows, 6)
	assert.Equal(t, 2, rows[4].Depth)
	assert.True(t, rows[0].Active)

	FindByID(p.Root, "lib").Collapsed = true
	rows = Flatten(p.Root, "")
	require.Len(t, rows, 3)
	assert.True(t, rows[1].Collapsed)
	assert.False(t, rows[0].Active)
}
