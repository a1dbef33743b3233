// Package nav tracks per-session browsing state: the breadcrumb path, the
// detail-panel selection, and which files have been opened. Navigation and
// selection are coupled: any path change clears the selection.
package nav

// State is one client's navigation state. The path is a stack of folder ids
// with the root always at index 0; it is never empty. State is not safe for
// concurrent use; each session owns its own.
type State struct {
	path       []string
	selectedID string
	opened     map[string]struct{}
}

// New creates navigation state rooted at rootID.
func New(rootID string) *State {
	return &State{
		path:   []string{rootID},
		opened: make(map[string]struct{}),
	}
}

// Current returns the folder id being viewed.
func (s *State) Current() string {
	return s.path[len(s.path)-1]
}

// AtRoot reports whether the path holds only the root.
func (s *State) AtRoot() bool {
	return len(s.path) == 1
}

// Breadcrumbs returns the id chain from root to the current folder.
func (s *State) Breadcrumbs() []string {
	return append([]string(nil), s.path...)
}

// Into descends into a folder.
func (s *State) Into(folderID string) {
	s.path = append(s.path, folderID)
	s.selectedID = ""
}

// ToCrumb truncates the path to end at the given breadcrumb index. Indexes
// outside the path are clamped.
func (s *State) ToCrumb(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(s.path) {
		index = len(s.path) - 1
	}
	s.path = s.path[:index+1]
	s.selectedID = ""
}

// Back pops the current folder; at root it is a no-op. The root is never
// removable from the path.
func (s *State) Back() {
	if len(s.path) > 1 {
		s.path = s.path[:len(s.path)-1]
		s.selectedID = ""
	}
}

// Select toggles the selection: selecting the selected item deselects it.
func (s *State) Select(itemID string) {
	if s.selectedID == itemID {
		s.selectedID = ""
		return
	}
	s.selectedID = itemID
}

// ClearSelection drops the selection, if any.
func (s *State) ClearSelection() {
	s.selectedID = ""
}

// Selected returns the selected item id, if any.
func (s *State) Selected() (string, bool) {
	return s.selectedID, s.selectedID != ""
}

// Drop removes a deleted item from the session state: deselects it if
// selected and forgets its opened mark.
func (s *State) Drop(itemID string) {
	if s.selectedID == itemID {
		s.selectedID = ""
	}
	delete(s.opened, itemID)
}

// MarkOpened records that a file has been opened in a preview.
func (s *State) MarkOpened(fileID string) {
	s.opened[fileID] = struct{}{}
}

// Opened reports whether a file has been opened this session.
func (s *State) Opened(fileID string) bool {
	_, ok := s.opened[fileID]
	return ok
}
