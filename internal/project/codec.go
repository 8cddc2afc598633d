package project

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// ValidationError explains why a stored or imported document is not a
// project. Path points at the offending field, e.g. "root.children[1].name".
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "invalid project: " + e.Reason
	}
	return fmt.Sprintf("invalid project: %s: %s", e.Path, e.Reason)
}

type fileJSON struct {
	ID      string `json:"id"`
	Type    Kind   `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

type folderJSON struct {
	ID        string  `json:"id"`
	Type      Kind    `json:"type"`
	Name      string  `json:"name"`
	Collapsed bool    `json:"collapsed"`
	Children  []*Node `json:"children"`
}

// MarshalJSON writes the per-kind shape: files carry content, folders carry
// collapsed and children.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsFolder() {
		children := n.Children
		if children == nil {
			children = []*Node{}
		}
		return json.Marshal(folderJSON{ID: n.ID, Type: n.Type, Name: n.Name, Collapsed: n.Collapsed, Children: children})
	}
	return json.Marshal(fileJSON{ID: n.ID, Type: n.Type, Name: n.Name, Content: n.Content})
}

type projectJSON struct {
	Root         *Node   `json:"root"`
	ActiveFileID *string `json:"activeFileId"`
}

func (p *Project) MarshalJSON() ([]byte, error) {
	out := projectJSON{Root: p.Root}
	if p.ActiveFileID != "" {
		id := p.ActiveFileID
		out.ActiveFileID = &id
	}
	return json.Marshal(out)
}

// Encode serializes the whole project document.
func Encode(p *Project) ([]byte, error) {
	return json.Marshal(p)
}

type wireNode struct {
	ID        *string      `json:"id"`
	Type      *string      `json:"type"`
	Name      *string      `json:"name"`
	Content   *string      `json:"content"`
	Collapsed *bool        `json:"collapsed"`
	Children  *[]*wireNode `json:"children"`
}

type wireProject struct {
	Root         *wireNode `json:"root"`
	ActiveFileID *string   `json:"activeFileId"`
}

// Decode parses and validates a project document. Any structural problem is
// reported as a *ValidationError; nothing is guessed or repaired except that
// a folder without "children" is treated as empty.
func Decode(data []byte) (*Project, error) {
	var w wireProject
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &ValidationError{Reason: "malformed JSON: " + err.Error()}
	}
	if w.Root == nil {
		return nil, &ValidationError{Path: "root", Reason: "missing"}
	}
	if w.Root.Type == nil || Kind(*w.Root.Type) != KindFolder {
		return nil, &ValidationError{Path: "root.type", Reason: "root must be a folder"}
	}
	if w.Root.ID == nil || *w.Root.ID != RootID {
		return nil, &ValidationError{Path: "root.id", Reason: fmt.Sprintf("root id must be %q", RootID)}
	}

	seen := map[string]bool{}
	root, err := decodeNode(w.Root, "root", seen)
	if err != nil {
		return nil, err
	}

	p := &Project{Root: root}
	if w.ActiveFileID != nil {
		p.ActiveFileID = *w.ActiveFileID
	}
	return p, nil
}

func decodeNode(w *wireNode, path string, seen map[string]bool) (*Node, error) {
	if w == nil {
		return nil, &ValidationError{Path: path, Reason: "null node"}
	}
	if w.ID == nil || strings.TrimSpace(*w.ID) == "" {
		return nil, &ValidationError{Path: path + ".id", Reason: "missing"}
	}
	if seen[*w.ID] {
		return nil, &ValidationError{Path: path + ".id", Reason: fmt.Sprintf("duplicate id %q", *w.ID)}
	}
	seen[*w.ID] = true
	if w.Name == nil || strings.TrimSpace(*w.Name) == "" {
		return nil, &ValidationError{Path: path + ".name", Reason: "missing"}
	}
	if w.Type == nil {
		return nil, &ValidationError{Path: path + ".type", Reason: "missing"}
	}

	n := &Node{ID: *w.ID, Type: Kind(*w.Type), Name: *w.Name}
	switch n.Type {
	case KindFile:
		if w.Children != nil {
			return nil, &ValidationError{Path: path + ".children", Reason: "files cannot have children"}
		}
		if w.Content != nil {
			n.Content = *w.Content
		}
	case KindFolder:
		if w.Content != nil {
			return nil, &ValidationError{Path: path + ".content", Reason: "folders cannot have content"}
		}
		if w.Collapsed != nil {
			n.Collapsed = *w.Collapsed
		}
		n.Children = []*Node{}
		if w.Children != nil {
			for i, cw := range *w.Children {
				c, err := decodeNode(cw, fmt.Sprintf("%s.children[%d]", path, i), seen)
				if err != nil {
					return nil, err
				}
				n.Children = append(n.Children, c)
			}
		}
	default:
		return nil, &ValidationError{Path: path + ".type", Reason: fmt.Sprintf("unknown type %q", *w.Type)}
	}
	return n, nil
}
