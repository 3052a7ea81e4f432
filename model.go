package main

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/LFroesch/dirman/internal/config"
	"github.com/LFroesch/dirman/internal/fileops"
	"github.com/LFroesch/dirman/internal/git"
	"github.com/LFroesch/dirman/internal/logger"
	"github.com/LFroesch/dirman/internal/utils"
	"github.com/LFroesch/dirman/internal/watch"
)

// Terminal dimension constants
const (
	minTerminalWidth  = 60
	minTerminalHeight = 16
)

type appMode int

const (
	modeFiles appMode = iota
	modeSelect
	modeRename
	modeDelete
	modeCreate
	modeHelp
	modeExit
)

func (m appMode) String() string {
	switch m {
	case modeFiles:
		return "Files"
	case modeSelect:
		return "Select"
	case modeRename:
		return "Rename"
	case modeDelete:
		return "Delete"
	case modeCreate:
		return "Create"
	case modeHelp:
		return "Help"
	case modeExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// isTerminal reports whether the run loop stops in this mode.
func (m appMode) isTerminal() bool {
	return m == modeExit
}

// dirChangedMsg is delivered when the watched directory changes on disk.
type dirChangedMsg struct {
	dir string
}

type model struct {
	nav     *fileops.Navigator
	files   selection
	actions selection
	input   inputBuffer
	marked  bookmark
	mode    appMode
	errMsg  string

	config  *config.Config
	watcher *watch.Watcher
	keys    keyMap
	help    help.Model

	gitStatus git.Status
	gitStale  bool   // set when the current directory changed on disk
	lastPath  string // path of the last refresh, used to detect navigation
	width     int
	height    int
}

// newModel builds the controller positioned wherever nav is and loads the
// first listing. watcher may be nil.
func newModel(cfg *config.Config, nav *fileops.Navigator, watcher *watch.Watcher) *model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := &model{
		nav:     nav,
		actions: newActionMenu(),
		input:   newInputBuffer(),
		mode:    modeFiles,
		config:  cfg,
		watcher: watcher,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	m.refresh()
	return m
}

// refresh reloads the listing of the current directory. After navigation the
// file list is replaced and the highlight goes back to the first entry;
// otherwise the highlight is kept and clamped.
func (m *model) refresh() {
	path := m.nav.Path()
	navigated := path != m.lastPath
	m.lastPath = path

	names, err := m.nav.List()
	if err != nil {
		logger.Error("Listing %s failed: %v", path, err)
		m.errMsg = err.Error()
		names = []string{}
	}
	names = m.visible(names)

	if navigated || m.gitStale {
		m.gitStatus = git.Inspect(path)
		m.gitStale = false
	}
	if !navigated {
		m.files.setItems(names)
		return
	}

	m.files.reset(names)
	if m.watcher != nil {
		if err := m.watcher.Watch(path); err != nil {
			logger.Warn("Cannot watch %s: %v", path, err)
		}
	}
}

func (m *model) visible(names []string) []string {
	if m.config.ShowHidden {
		return names
	}
	shown := make([]string, 0, len(names))
	for _, name := range names {
		if !utils.IsHidden(name) {
			shown = append(shown, name)
		}
	}
	return shown
}

// fail records a failed operation.
func (m *model) fail(op string, err error) {
	logger.Error("%s failed: %v", op, err)
	m.errMsg = err.Error()
}

func (m *model) succeed(format string, args ...any) {
	logger.Info(format, args...)
	m.errMsg = ""
}

// changed records a successful operation that touched the filesystem.
func (m *model) changed(format string, args ...any) {
	m.succeed(format, args...)
	m.gitStale = true
}

// returnToFiles leaves any menu or prompt and goes back to the listing.
func (m *model) returnToFiles() {
	m.actions.clear()
	m.mode = modeFiles
}

func (m *model) moveInto() {
	name, ok := m.files.current()
	if !ok {
		return
	}
	m.nav.Descend(name)
	m.errMsg = ""
}

func (m *model) moveOut() {
	m.nav.Ascend()
	m.errMsg = ""
}

// moveBookmarked moves the bookmarked file into the current directory. The
// bookmark is only cleared once the move succeeds.
func (m *model) moveBookmarked() {
	if !m.marked.isSet() {
		return
	}
	dest, err := m.nav.Resolve(m.marked.name)
	if err != nil {
		m.fail("Move", err)
		return
	}
	if err := m.nav.Rename(m.marked.fullPath, dest); err != nil {
		m.fail("Move", err)
		return
	}
	m.changed("Moved %s to %s", m.marked.fullPath, dest)
	m.marked.clear()
}

func (m *model) openCreate() {
	m.input.reset()
	m.mode = modeCreate
}

func (m *model) openMenu() {
	m.actions.selectIndex(0)
	m.mode = modeSelect
}

func (m *model) closeMenu() {
	m.returnToFiles()
}

// backToMenu abandons a prompt.
func (m *model) backToMenu() {
	m.input.reset()
	m.mode = modeSelect
}

// dispatchAction runs the highlighted action against the highlighted file.
// Nothing happens unless both are highlighted.
func (m *model) dispatchAction() {
	name, ok := m.files.current()
	if !ok {
		return
	}
	action, ok := highlightedAction(m.actions)
	if !ok {
		return
	}

	switch action {
	case actionDelete:
		m.input.reset()
		m.mode = modeDelete
	case actionRename:
		m.input.seed(name)
		m.mode = modeRename
	case actionBookmark:
		full, err := m.nav.Resolve(name)
		if err != nil {
			m.fail("Bookmark", err)
			return
		}
		m.marked.set(full, name)
		m.succeed("Bookmarked %s", full)
		m.returnToFiles()
	}
}

// renameFile renames the highlighted file to the prompt value. The mode goes
// back to Files whether or not the rename worked.
func (m *model) renameFile() {
	m.returnToFiles()

	name, ok := m.files.current()
	if !ok {
		return
	}
	oldPath, err := m.nav.Resolve(name)
	if err != nil {
		m.fail("Rename", err)
		return
	}
	newPath, err := m.nav.Resolve(m.input.text())
	if err != nil {
		m.fail("Rename", err)
		return
	}
	if err := m.nav.Rename(oldPath, newPath); err != nil {
		m.fail("Rename", err)
		return
	}
	m.changed("Renamed %s to %s", oldPath, newPath)
}

// deleteFile removes the highlighted file when the confirmation is exactly
// "y". The entry is stat'ed right before removal to pick file or tree delete.
func (m *model) deleteFile() {
	confirmed := m.input.text() == "y"
	m.returnToFiles()
	if !confirmed {
		return
	}

	name, ok := m.files.current()
	if !ok {
		return
	}
	meta, ok := m.nav.Metadata(name)
	if !ok {
		logger.Debug("Skipping delete of %s: entry is gone", name)
		return
	}
	full, err := m.nav.Resolve(name)
	if err != nil {
		m.fail("Delete", err)
		return
	}
	if err := m.nav.Delete(full, meta.Kind); err != nil {
		m.fail("Delete", err)
		return
	}
	m.changed("Deleted %s (%s)", full, meta.Kind)
}

func (m *model) createFile() {
	m.returnToFiles()

	full, err := m.nav.Resolve(m.input.text())
	if err != nil {
		m.fail("Create", err)
		return
	}
	if err := m.nav.Create(full); err != nil {
		m.fail("Create", err)
		return
	}
	m.changed("Created %s", full)
}
