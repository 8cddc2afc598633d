package project

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// FindByID returns the first node with the given id in a depth-first walk.
func FindByID(n *Node, id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	if !n.IsFolder() {
		return nil
	}
	for _, c := range n.Children {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParentOf returns the folder whose direct children contain id.
// It returns nil for the root itself or for an unknown id.
func FindParentOf(n *Node, id string) *Node {
	if !n.IsFolder() {
		return nil
	}
	for _, c := range n.Children {
		if c.ID == id {
			return n
		}
		if c.IsFolder() {
			if found := FindParentOf(c, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// Detach removes the node from its parent and returns it. Sibling order is
// preserved. It returns nil when the node has no parent in this tree.
func Detach(root *Node, id string) *Node {
	parent := FindParentOf(root, id)
	if parent == nil {
		return nil
	}
	idx := indexOf(parent.Children, id)
	if idx < 0 {
		return nil
	}
	n := parent.Children[idx]
	parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)
	return n
}

// AttachIntoFolder appends node to folder and expands the folder so the
// result is visible.
func AttachIntoFolder(folder, node *Node) {
	folder.Children = append(folder.Children, node)
	folder.Collapsed = false
}

// ContainsID reports whether id is n itself or anywhere below it.
func ContainsID(n *Node, id string) bool {
	if n == nil {
		return false
	}
	if n.ID == id {
		return true
	}
	if n.IsFolder() {
		for _, c := range n.Children {
			if ContainsID(c, id) {
				return true
			}
		}
	}
	return false
}

// UniqueChildName returns desired, or the first of "base (2).ext",
// "base (3).ext", ... that no child of folder already uses. Comparison is
// case-insensitive.
func UniqueChildName(folder *Node, desired string) string {
	return uniqueChildName(folder, desired, "")
}

func uniqueChildName(folder *Node, desired, skipID string) string {
	names := NewNameSet()
	for _, c := range folder.Children {
		if c.ID != skipID {
			names.Add(c.Name)
		}
	}
	return names.unique(desired)
}

// NameSet remembers names case-insensitively.
type NameSet struct {
	fold cases.Caser
	seen map[string]bool
}

func NewNameSet() *NameSet {
	return &NameSet{fold: cases.Fold(), seen: make(map[string]bool)}
}

func (s *NameSet) Add(name string) { s.seen[s.fold.String(name)] = true }

func (s *NameSet) Has(name string) bool { return s.seen[s.fold.String(name)] }

// Claim returns desired, or its first free "base (n).ext" variant, and
// records the result.
func (s *NameSet) Claim(desired string) string {
	name := s.unique(desired)
	s.Add(name)
	return name
}

func (s *NameSet) unique(desired string) string {
	if !s.Has(desired) {
		return desired
	}
	base, ext := desired, ""
	if dot := strings.LastIndex(desired, "."); dot > strings.LastIndex(desired, "/") {
		base, ext = desired[:dot], desired[dot:]
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if !s.Has(candidate) {
			return candidate
		}
	}
}

// NormalizeFileName trims name and appends ext when the name has no dot.
// An empty result means the name was blank.
func NormalizeFileName(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if !strings.Contains(name, ".") {
		return name + ext
	}
	return name
}

// CountFiles counts file nodes at or below n.
func CountFiles(n *Node) int {
	if n == nil {
		return 0
	}
	if n.IsFile() {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += CountFiles(c)
	}
	return total
}

// WalkFiles calls fn for every file below root in display order. dirs holds
// the names of the enclosing folders; root itself contributes no segment.
func WalkFiles(root *Node, fn func(dirs []string, f *Node)) {
	var walk func(n *Node, dirs []string)
	walk = func(n *Node, dirs []string) {
		if n.IsFile() {
			fn(dirs, n)
			return
		}
		next := dirs
		if n != root {
			next = append(append([]string(nil), dirs...), n.Name)
		}
		for _, c := range n.Children {
			walk(c, next)
		}
	}
	if root != nil {
		walk(root, nil)
	}
}

// Row is one visible line of the explorer.
type Row struct {
	ID        string `json:"id"`
	Type      Kind   `json:"type"`
	Name      string `json:"name"`
	Depth     int    `json:"depth"`
	Collapsed bool   `json:"collapsed,omitempty"`
	Active    bool   `json:"active,omitempty"`
}

// Flatten lists the visible rows under root. Children of collapsed folders
// are skipped; the root itself is not listed.
func Flatten(root *Node, activeID string) []Row {
	rows := []Row{}
	var walk func(folder *Node, depth int)
	walk = func(folder *Node, depth int) {
		for _, c := range folder.Children {
			rows = append(rows, Row{
				ID:        c.ID,
				Type:      c.Type,
				Name:      c.Name,
				Depth:     depth,
				Collapsed: c.IsFolder() && c.Collapsed,
				Active:    c.IsFile() && c.ID == activeID,
			})
			if c.IsFolder() && !c.Collapsed {
				walk(c, depth+1)
			}
		}
	}
	if root.IsFolder() {
		walk(root, 0)
	}
	return rows
}

func indexOf(nodes []*Node, id string) int {
	for i, n := range nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
