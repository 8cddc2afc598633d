package project

import (
	"fmt"
	"strings"
)

// ResolveFolder returns the folder create actions should target for id:
// the folder itself, the parent of a file, or the root when id is unknown.
func (p *Project) ResolveFolder(id string) *Node {
	n := FindByID(p.Root, id)
	switch {
	case n.IsFolder():
		return n
	case n.IsFile():
		if parent := FindParentOf(p.Root, id); parent != nil {
			return parent
		}
	}
	return p.Root
}

// CreateFile appends a new file to folder under a collision-free name.
func (p *Project) CreateFile(folderID, name, content string) (*Node, error) {
	folder, err := p.folder(folderID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	f := NewFile(UniqueChildName(folder, name), content)
	folder.Children = append(folder.Children, f)
	return f, nil
}

// CreateFolder appends a new, expanded folder under a collision-free name.
func (p *Project) CreateFolder(parentID, name string) (*Node, error) {
	parent, err := p.folder(parentID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	f := NewFolder(UniqueChildName(parent, name))
	parent.Children = append(parent.Children, f)
	return f, nil
}

// Rename changes a node's name, de-duplicating against its siblings.
// It returns the name actually applied.
func (p *Project) Rename(id, name string) (string, error) {
	if id == p.Root.ID {
		return "", ErrRootImmutable
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	n := FindByID(p.Root, id)
	parent := FindParentOf(p.Root, id)
	if n == nil || parent == nil {
		return "", fmt.Errorf("rename %s: %w", id, ErrNotFound)
	}
	n.Name = uniqueChildName(parent, name, n.ID)
	return n.Name, nil
}

// Move implements the explorer's drop semantics. Dropping onto a folder
// appends inside it; dropping onto a file inserts just before that file in
// the file's folder. Dropping a node onto itself does nothing.
func (p *Project) Move(sourceID, targetID string) error {
	if sourceID == targetID {
		return nil
	}
	if sourceID == p.Root.ID {
		return ErrRootImmutable
	}
	source := FindByID(p.Root, sourceID)
	target := FindByID(p.Root, targetID)
	if source == nil || target == nil {
		return fmt.Errorf("move %s -> %s: %w", sourceID, targetID, ErrNotFound)
	}
	if source.IsFolder() && ContainsID(source, target.ID) {
		return ErrCycle
	}

	moved := Detach(p.Root, sourceID)
	if moved == nil {
		return fmt.Errorf("move %s: %w", sourceID, ErrNotFound)
	}

	if target.IsFolder() {
		moved.Name = UniqueChildName(target, moved.Name)
		AttachIntoFolder(target, moved)
		return nil
	}

	parent := FindParentOf(p.Root, target.ID)
	if parent == nil {
		parent = p.Root
	}
	moved.Name = UniqueChildName(parent, moved.Name)
	at := indexOf(parent.Children, target.ID)
	if at < 0 {
		at = len(parent.Children)
	}
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[at+1:], parent.Children[at:])
	parent.Children[at] = moved
	return nil
}

// Delete removes a node and its subtree. An active file inside the removed
// subtree is closed.
func (p *Project) Delete(id string) (*Node, error) {
	if id == p.Root.ID {
		return nil, ErrRootImmutable
	}
	n := Detach(p.Root, id)
	if n == nil {
		return nil, fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	if p.ActiveFileID != "" && ContainsID(n, p.ActiveFileID) {
		p.ActiveFileID = ""
	}
	return n, nil
}

// ToggleCollapsed flips a folder's collapsed flag and returns the new value.
func (p *Project) ToggleCollapsed(id string) (bool, error) {
	n := FindByID(p.Root, id)
	if n == nil {
		return false, fmt.Errorf("toggle %s: %w", id, ErrNotFound)
	}
	if !n.IsFolder() {
		return false, ErrNotFolder
	}
	n.Collapsed = !n.Collapsed
	return n.Collapsed, nil
}

// SetContent overwrites a file's content.
func (p *Project) SetContent(id, content string) error {
	n := FindByID(p.Root, id)
	if n == nil {
		return fmt.Errorf("write %s: %w", id, ErrNotFound)
	}
	if !n.IsFile() {
		return ErrNotFile
	}
	n.Content = content
	return nil
}

func (p *Project) folder(id string) (*Node, error) {
	if id == "" {
		return p.Root, nil
	}
	n := FindByID(p.Root, id)
	if n == nil {
		return nil, fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}
	if !n.IsFolder() {
		return nil, ErrNotFolder
	}
	return n, nil
}
