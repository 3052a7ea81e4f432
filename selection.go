package main

// noSelection marks a list without a highlighted item.
const noSelection = -1

// selection is an ordered list of display strings with at most one
// highlighted index. The highlight is always noSelection or a valid index.
type selection struct {
	items    []string
	selected int
}

// newSelection returns a list with the first item highlighted, if any.
func newSelection(items []string) selection {
	s := selection{selected: noSelection}
	s.reset(items)
	return s
}

// reset replaces the items wholesale and highlights the first one.
func (s *selection) reset(items []string) {
	s.items = items
	s.selected = noSelection
	if len(items) > 0 {
		s.selected = 0
	}
}

// setItems replaces the items, clamping the highlight into range.
func (s *selection) setItems(items []string) {
	s.items = items
	if s.selected >= len(items) {
		s.selected = len(items) - 1
	}
	if len(items) == 0 {
		s.selected = noSelection
	}
}

func (s *selection) selectIndex(i int) {
	switch {
	case len(s.items) == 0:
		s.selected = noSelection
	case i < 0:
		s.selected = 0
	case i >= len(s.items):
		s.selected = len(s.items) - 1
	default:
		s.selected = i
	}
}

func (s *selection) clear() {
	s.selected = noSelection
}

func (s *selection) next() {
	if len(s.items) == 0 {
		return
	}
	if s.selected == noSelection {
		s.selected = 0
		return
	}
	s.selectIndex(s.selected + 1)
}

func (s *selection) previous() {
	if len(s.items) == 0 {
		return
	}
	if s.selected == noSelection {
		s.selected = len(s.items) - 1
		return
	}
	s.selectIndex(s.selected - 1)
}

// index returns the highlighted index.
func (s selection) index() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// current returns the highlighted item.
func (s selection) current() (string, bool) {
	i, ok := s.index()
	if !ok {
		return "", false
	}
	return s.items[i], true
}

func (s selection) count() int {
	return len(s.items)
}

type fileAction int

const (
	actionDelete fileAction = iota
	actionRename
	actionBookmark
)

// fileActions is the action menu, in display order.
var fileActions = []fileAction{actionDelete, actionRename, actionBookmark}

func (a fileAction) String() string {
	switch a {
	case actionDelete:
		return "Delete"
	case actionRename:
		return "Rename"
	case actionBookmark:
		return "Bookmark"
	default:
		return "Unknown"
	}
}

// newActionMenu returns the action list with nothing highlighted.
func newActionMenu() selection {
	labels := make([]string, len(fileActions))
	for i, action := range fileActions {
		labels[i] = action.String()
	}
	return selection{items: labels, selected: noSelection}
}

// highlightedAction maps the menu highlight straight to its action.
func highlightedAction(menu selection) (fileAction, bool) {
	i, ok := menu.index()
	if !ok || i >= len(fileActions) {
		return 0, false
	}
	return fileActions[i], true
}

// bookmark remembers one file to be moved later. Both fields are set or
// cleared together.
type bookmark struct {
	fullPath string
	name     string
}

func (b bookmark) isSet() bool {
	return b.fullPath != ""
}

func (b *bookmark) set(fullPath, name string) {
	if fullPath == "" || name == "" {
		b.clear()
		return
	}
	b.fullPath = fullPath
	b.name = name
}

func (b *bookmark) clear() {
	*b = bookmark{}
}
