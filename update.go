package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/dirman/internal/logger"
)

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Directory Manager"),
		m.waitForChange(),
	)
}

// waitForChange blocks on the watcher and turns the next change into a
// message. Without a watcher there is nothing to wait for.
func (m *model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		dir, ok := <-changes
		if !ok {
			return nil
		}
		return dirChangedMsg{dir: dir}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minTerminalWidth)
		m.height = max(msg.Height, minTerminalHeight)
		m.help.Width = m.width
		return m, nil

	case dirChangedMsg:
		if m.mode.isTerminal() {
			return m, nil
		}
		// a change from a directory we already left is stale
		if msg.dir == m.nav.Path() {
			m.gitStale = true
			m.refresh()
		}
		return m, m.waitForChange()

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

// handleKey runs one turn of the state machine: global keys first, then the
// handler for the current mode, then a refresh of the listing.
func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.mode.isTerminal() {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		logger.Info("Exiting from %s mode", m.mode)
		m.mode = modeExit
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	default:
		switch m.mode {
		case modeFiles:
			m.handleFilesKey(msg)
		case modeSelect:
			m.handleSelectKey(msg)
		case modeRename:
			m.handlePromptKey(msg, m.renameFile)
		case modeDelete:
			m.handlePromptKey(msg, m.deleteFile)
		case modeCreate:
			m.handlePromptKey(msg, m.createFile)
		case modeHelp:
			if key.Matches(msg, m.keys.Cancel) {
				m.mode = modeFiles
			}
		}
	}

	m.refresh()
	return nil
}

func (m *model) handleFilesKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.files.previous()
	case key.Matches(msg, m.keys.Down):
		m.files.next()
	case key.Matches(msg, m.keys.Create):
		m.openCreate()
	case key.Matches(msg, m.keys.MoveInto):
		m.moveInto()
	case key.Matches(msg, m.keys.MoveOut):
		m.moveOut()
	case key.Matches(msg, m.keys.MoveMarked):
		m.moveBookmarked()
	case key.Matches(msg, m.keys.Select):
		m.openMenu()
	case key.Matches(msg, m.keys.CopyPath):
		m.copyPath()
	case key.Matches(msg, m.keys.Open):
		m.openEntry()
	}
}

func (m *model) handleSelectKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.actions.previous()
	case key.Matches(msg, m.keys.Down):
		m.actions.next()
	case key.Matches(msg, m.keys.Confirm):
		m.dispatchAction()
	case key.Matches(msg, m.keys.Cancel):
		m.closeMenu()
	}
}

// handlePromptKey edits the input buffer. Enter runs submit, Esc goes back to
// the action menu.
func (m *model) handlePromptKey(msg tea.KeyMsg, submit func()) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		submit()
	case key.Matches(msg, m.keys.Cancel):
		m.backToMenu()
	case key.Matches(msg, m.keys.Backspace):
		m.input.deleteChar()
	default:
		for _, r := range typedRunes(msg) {
			m.input.enterChar(r)
		}
	}
}

// typedRunes returns the printable text carried by a key event. Pastes
// arrive as one event and yield every rune in order.
func typedRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	default:
		return nil
	}
}
