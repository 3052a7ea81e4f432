package main

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// maxInputLength bounds prompt input to a typical filename limit.
const maxInputLength = 255

// inputBuffer is the text collected by the rename, delete and create
// prompts. The value is held verbatim; textinput only renders a copy, since
// its sanitizer rewrites tabs, newlines and control runes.
type inputBuffer struct {
	value []rune
	pos   int
	ti    textinput.Model
}

func newInputBuffer() inputBuffer {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = 50
	ti.Focus()
	return inputBuffer{ti: ti}
}

func (b *inputBuffer) text() string {
	return string(b.value)
}

// cursor is a rune offset in 0..=len(value).
func (b *inputBuffer) cursor() int {
	return b.pos
}

// seed replaces the value and moves the cursor to its end.
func (b *inputBuffer) seed(text string) {
	b.value = []rune(text)
	b.pos = len(b.value)
}

func (b *inputBuffer) reset() {
	b.seed("")
}

// enterChar inserts r at the cursor and moves the cursor past it.
func (b *inputBuffer) enterChar(r rune) {
	if len(b.value) >= maxInputLength {
		return
	}
	b.value = append(b.value, 0)
	copy(b.value[b.pos+1:], b.value[b.pos:])
	b.value[b.pos] = r
	b.pos++
}

// deleteChar removes the rune before the cursor. At position 0 it does nothing.
func (b *inputBuffer) deleteChar() {
	if b.pos == 0 {
		return
	}
	b.value = append(b.value[:b.pos-1], b.value[b.pos:]...)
	b.pos--
}

// moveCursor places the cursor at pos, clamped into the value.
func (b *inputBuffer) moveCursor(pos int) {
	b.pos = max(0, min(pos, len(b.value)))
}

func (b *inputBuffer) view() string {
	ti := b.ti
	ti.SetValue(b.text())
	ti.SetCursor(b.pos)
	return ti.View()
}
