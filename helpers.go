package main

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/skratchdot/open-golang/open"
)

var errClipboardDisabled = errors.New("clipboard is disabled in config")

// copyPath puts the full path of the highlighted entry on the system clipboard.
func (m *model) copyPath() {
	name, ok := m.files.current()
	if !ok {
		return
	}
	full, err := m.nav.Resolve(name)
	if err != nil {
		m.fail("Copy path", err)
		return
	}
	if !m.config.Clipboard {
		m.fail("Copy path", errClipboardDisabled)
		return
	}
	if err := clipboard.WriteAll(full); err != nil {
		m.fail("Copy path", err)
		return
	}
	m.succeed("Copied %s", full)
}

// openEntry hands the highlighted entry to the OS default application. It
// does not wait for the application to exit.
func (m *model) openEntry() {
	name, ok := m.files.current()
	if !ok {
		return
	}
	full, err := m.nav.Resolve(name)
	if err != nil {
		m.fail("Open", err)
		return
	}
	if err := open.Start(full); err != nil {
		m.fail("Open", err)
		return
	}
	m.succeed("Opened %s", full)
}
