package project

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileThreeTimes(t *testing.T) {
	p := Default()
	var got []string
	for i := 0; i < 3; i++ {
		f, err := p.CreateFile("", "a.lua", "")
		require.NoError(t, err)
		got = append(got, f.Name)
	}
	assert.Equal(t, []string{"a.lua", "a (2).lua", "a (3).lua"}, got)
}

func TestCreateRejectsBadTargets(t *testing.T) {
	p := sample()

	_, err := p.CreateFile("main", "x.lua", "")
	assert.ErrorIs(t, err, ErrNotFolder)

	_, err = p.CreateFolder("missing", "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = p.CreateFile("", "  ", "")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestResolveFolder(t *testing.T) {
	p := sample()
	assert.Equal(t, "lib", p.ResolveFolder("lib").ID)
	assert.Equal(t, "deep", p.ResolveFolder("x").ID)
	assert.Equal(t, RootID, p.ResolveFolder("main").ID)
	assert.Equal(t, RootID, p.ResolveFolder("ghost").ID)
}

func TestRename(t *testing.T) {
	p := sample()

	name, err := p.Rename("b", "main.lua")
	require.NoError(t, err)
	assert.Equal(t, "main (2).lua", name)

	name, err = p.Rename("main", "MAIN.lua")
	require.NoError(t, err)
	assert.Equal(t, "MAIN.lua", name, "renaming to itself must not suffix")

	_, err = p.Rename(RootID, "x")
	assert.ErrorIs(t, err, ErrRootImmutable)

	_, err = p.Rename("ghost", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveIntoFolder(t *testing.T) {
	p := sample()
	before := FindByID(p.Root, "main").clone()
	FindByID(p.Root, "deep").Collapsed = true

	require.NoError(t, p.Move("main", "deep"))

	deep := FindByID(p.Root, "deep")
	assert.False(t, deep.Collapsed)
	assert.Equal(t, []string{"x.lua", "main.lua"}, names(deep.Children))
	assert.Equal(t, []string{"lib", "b.lua"}, names(p.Root.Children))

	moved := FindByID(p.Root, "main")
	if diff := cmp.Diff(before, moved); diff != "" {
		t.Errorf("moved node changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, countID(p.Root, "main"))
}

func TestMoveOntoFileInsertsBefore(t *testing.T) {
	p := sample()
	require.NoError(t, p.Move("b", "util"))

	lib := FindByID(p.Root, "lib")
	assert.Equal(t, []string{"b.lua", "util.lua", "deep"}, names(lib.Children))

	// reorder within the same folder
	require.NoError(t, p.Move("deep", "b"))
	assert.Equal(t, []string{"deep", "b.lua", "util.lua"}, names(lib.Children))
}

func TestMoveDedupsName(t *testing.T) {
	p := sample()
	_, err := p.CreateFile("lib", "b.lua", "")
	require.NoError(t, err)
	require.NoError(t, p.Move("b", "lib"))
	assert.Equal(t, "b (2).lua", FindByID(p.Root, "b").Name)
}

func TestMoveFolderIntoDescendantRejected(t *testing.T) {
	p := sample()
	snapshot := p.Clone()

	err := p.Move("lib", "x")
	assert.ErrorIs(t, err, ErrCycle)
	err = p.Move("lib", "deep")
	assert.ErrorIs(t, err, ErrCycle)

	if diff := cmp.Diff(snapshot, p); diff != "" {
		t.Errorf("tree changed after rejected move (-want +got):\n%s", diff)
	}
}

func TestMoveEdgeCases(t *testing.T) {
	p := sample()
	snapshot := p.Clone()

	require.NoError(t, p.Move("lib", "lib"))
	assert.ErrorIs(t, p.Move(RootID, "lib"), ErrRootImmutable)
	assert.True(t, errors.Is(p.Move("ghost", "lib"), ErrNotFound))
	assert.True(t, errors.Is(p.Move("lib", "ghost"), ErrNotFound))

	assert.Empty(t, cmp.Diff(snapshot, p))
}

func TestDeleteClearsActiveInSubtree(t *testing.T) {
	p := sample()
	p.ActiveFileID = "x"

	removed, err := p.Delete("lib")
	require.NoError(t, err)
	assert.Equal(t, "lib", removed.ID)
	assert.Empty(t, p.ActiveFileID)
	assert.Nil(t, p.ActiveFile())

	_, err = p.Delete(RootID)
	assert.ErrorIs(t, err, ErrRootImmutable)
	_, err = p.Delete("lib")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteKeepsUnrelatedActive(t *testing.T) {
	p := sample()
	_, err := p.Delete("b")
	require.NoError(t, err)
	assert.Equal(t, "main", p.ActiveFileID)
}

func TestToggleAndSetContent(t *testing.T) {
	p := sample()

	c, err := p.ToggleCollapsed("lib")
	require.NoError(t, err)
	assert.True(t, c)
	c, err = p.ToggleCollapsed("lib")
	require.NoError(t, err)
	assert.False(t, c)

	_, err = p.ToggleCollapsed("main")
	assert.ErrorIs(t, err, ErrNotFolder)

	require.NoError(t, p.SetContent("b", "print('b')"))
	assert.Equal(t, "print('b')", FindByID(p.Root, "b").Content)
	assert.ErrorIs(t, p.SetContent("lib", "x"), ErrNotFile)
}

func TestActiveFileDangling(t *testing.T) {
	p := sample()
	p.ActiveFileID = "gone"
	assert.Nil(t, p.ActiveFile())
	p.ActiveFileID = "lib"
	assert.Nil(t, p.ActiveFile(), "a folder is never the active file")
}

func countID(n *Node, id string) int {
	total := 0
	if n.ID == id {
		total++
	}
	for _, c := range n.Children {
		total += countID(c, id)
	}
	return total
}
