// Package project holds the in-memory IDE project: a rooted tree of folders
// and files plus the id of the file that is open in the editor.
//
// Parent links are never stored. Every parent lookup walks the tree from the
// root, so a move can only ever change one place.
package project

import (
	"errors"

	"github.com/google/uuid"
)

// RootID is the fixed id of the project root folder.
const RootID = "root"

var (
	ErrNotFound      = errors.New("node not found")
	ErrNotFolder     = errors.New("node is not a folder")
	ErrNotFile       = errors.New("node is not a file")
	ErrCycle         = errors.New("cannot move a folder into itself")
	ErrRootImmutable = errors.New("root folder cannot be changed")
	ErrEmptyName     = errors.New("name is empty")
)

type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// Node is a file or a folder. Content is only meaningful for files;
// Collapsed and Children only for folders.
type Node struct {
	ID        string
	Type      Kind
	Name      string
	Content   string
	Collapsed bool
	Children  []*Node
}

func (n *Node) IsFolder() bool { return n != nil && n.Type == KindFolder }
func (n *Node) IsFile() bool   { return n != nil && n.Type == KindFile }

// Project is the persisted IDE document.
type Project struct {
	Root         *Node
	ActiveFileID string // "" when no file is open
}

// NewID returns a fresh node id.
func NewID() string {
	return uuid.NewString()
}

func NewFile(name, content string) *Node {
	return &Node{ID: NewID(), Type: KindFile, Name: name, Content: content}
}

func NewFolder(name string) *Node {
	return &Node{ID: NewID(), Type: KindFolder, Name: name, Children: []*Node{}}
}

// Default is the project used when nothing usable is stored.
func Default() *Project {
	main := NewFile("main.lua", "print('Hello from Luau!')\n")
	return &Project{
		Root: &Node{
			ID:       RootID,
			Type:     KindFolder,
			Name:     "Project",
			Children: []*Node{main},
		},
		ActiveFileID: main.ID,
	}
}

// ActiveFile resolves ActiveFileID. A dangling id yields nil.
func (p *Project) ActiveFile() *Node {
	if p == nil || p.ActiveFileID == "" {
		return nil
	}
	n := FindByID(p.Root, p.ActiveFileID)
	if !n.IsFile() {
		return nil
	}
	return n
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	return &Project{Root: p.Root.clone(), ActiveFileID: p.ActiveFileID}
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.clone()
		}
	}
	return &c
}
