package editor

import (
	"github.com/petervdpas/folio/internal/project"
)

// SelectFolder sets the folder create actions target. A file selects its
// parent; an unknown id selects the root. The chosen folder id is returned.
func (s *Session) SelectFolder(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedFolder = s.proj.ResolveFolder(id).ID
	return s.selectedFolder
}

func (s *Session) targetFolderLocked(id string) string {
	if id == "" {
		id = s.selectedFolder
	}
	return s.proj.ResolveFolder(id).ID
}

// CreateFile adds an empty file to folderID (or the selected folder when
// empty) and opens it. Names without an extension get the default one.
func (s *Session) CreateFile(folderID, name string) (*project.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = project.NormalizeFileName(name, s.opts.DefaultExt)
	if name == "" {
		return nil, project.ErrEmptyName
	}
	f, err := s.proj.CreateFile(s.targetFolderLocked(folderID), name, "")
	if err != nil {
		return nil, err
	}
	s.flushLocked()
	s.proj.ActiveFileID = f.ID
	s.buffer = ""
	s.saveLocked()
	s.changedLocked()
	return f, nil
}

// CreateFolder adds an expanded, empty folder.
func (s *Session) CreateFolder(parentID, name string) (*project.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.proj.CreateFolder(s.targetFolderLocked(parentID), name)
	if err != nil {
		return nil, err
	}
	s.saveLocked()
	s.changedLocked()
	return f, nil
}

func (s *Session) Rename(id, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied, err := s.proj.Rename(id, name)
	if err != nil {
		return "", err
	}
	s.saveLocked()
	s.changedLocked()
	return applied, nil
}

// Move applies drag-and-drop semantics; see project.Project.Move.
func (s *Session) Move(sourceID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.proj.Move(sourceID, targetID); err != nil {
		return err
	}
	s.saveLocked()
	s.changedLocked()
	return nil
}

// Delete removes a node. When the open file goes with it the editor is
// left empty.
func (s *Session) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushLocked()
	if _, err := s.proj.Delete(id); err != nil {
		return err
	}
	if s.proj.ActiveFileID == "" {
		s.buffer = ""
	}
	if project.FindByID(s.proj.Root, s.selectedFolder) == nil {
		s.selectedFolder = s.proj.Root.ID
	}
	s.saveLocked()
	s.changedLocked()
	return nil
}

func (s *Session) ToggleFolder(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collapsed, err := s.proj.ToggleCollapsed(id)
	if err != nil {
		return false, err
	}
	s.saveLocked()
	s.changedLocked()
	return collapsed, nil
}
