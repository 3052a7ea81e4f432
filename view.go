package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LFroesch/dirman/internal/utils"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	activePanelStyle = panelStyle.BorderForeground(lipgloss.Color("205"))

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("105"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	modifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	branchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Background(lipgloss.Color("235"))
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
)

func (m *model) View() string {
	if m.mode.isTerminal() {
		return ""
	}
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = minTerminalWidth, minTerminalHeight
	}

	sections := []string{m.renderHeader(width)}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Width(width).Render(m.errMsg))
	}

	if m.mode == modeHelp {
		sections = append(sections, m.renderHelp(width))
	} else {
		listHeight := height - 10
		if m.errMsg != "" {
			listHeight--
		}
		if m.showsMenu() {
			listHeight -= len(fileActions) + 2
		}
		if m.showsPrompt() {
			listHeight -= 3
		}
		listHeight = max(listHeight, 3)

		leftWidth := width * 3 / 5
		rightWidth := width - leftWidth
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderFiles(leftWidth, listHeight),
			m.renderProperties(rightWidth),
		)
		sections = append(sections, body)

		if m.showsMenu() {
			sections = append(sections, m.renderMenu(width))
		}
		if m.showsPrompt() {
			sections = append(sections, m.renderPrompt(width))
		}
	}

	sections = append(sections, m.renderStatusBar(width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *model) showsMenu() bool {
	return m.mode == modeSelect || m.mode == modeRename || m.mode == modeDelete
}

func (m *model) showsPrompt() bool {
	return m.mode == modeRename || m.mode == modeDelete || m.mode == modeCreate
}

func (m *model) renderHeader(width int) string {
	title := "Directory Manager"
	if m.gitStatus.Branch == "" {
		return headerStyle.Width(width).Render(title)
	}
	branch := branchStyle.Render(" " + m.gitStatus.Branch + " ")
	left := headerStyle.Width(max(width-lipgloss.Width(branch), 0)).Render(title)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, branch)
}

// renderFiles draws the listing, scrolled so the highlight stays visible.
func (m *model) renderFiles(width, height int) string {
	style := panelStyle
	if m.mode == modeFiles {
		style = activePanelStyle
	}
	inner := max(width-4, 10)

	var b strings.Builder
	b.WriteString(titleStyle.Render(truncate(m.nav.CurrentPath(), inner)))
	b.WriteString("\n")

	if m.files.count() == 0 {
		b.WriteString(dimStyle.Render("(empty)"))
		return style.Width(width - 2).Render(b.String())
	}

	selected, hasSelection := m.files.index()
	start := 0
	if hasSelection && selected >= height {
		start = selected - height + 1
	}
	end := min(start+height, m.files.count())

	for i := start; i < end; i++ {
		name := m.files.items[i]
		icon := "📄"
		if meta, ok := m.nav.Metadata(name); ok {
			icon = utils.EntryIcon(name, meta.Kind)
		}
		marker := " "
		if full, err := m.nav.Resolve(name); err == nil && m.gitStatus.IsModified(full) {
			marker = modifiedStyle.Render("●")
		}

		line := fmt.Sprintf("%s %s", icon, truncate(name, inner-5))
		if hasSelection && i == selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker + line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return style.Width(width - 2).Render(b.String())
}

// renderProperties shows metadata for the highlighted entry, looked up fresh
// on every draw.
func (m *model) renderProperties(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Properties"))
	b.WriteString("\n")

	name, ok := m.files.current()
	meta, found := m.nav.Metadata(name)
	if !ok || !found {
		b.WriteString(dimStyle.Render("nothing selected"))
	} else {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Filename:"), meta.Name)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Type:"), meta.Kind)
		fmt.Fprintf(&b, "%s %s", labelStyle.Render("Size:"), utils.FormatFileSizeColored(meta.Size))
	}

	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Bookmark"))
	b.WriteString("\n")
	if m.marked.isSet() {
		b.WriteString(truncate(m.marked.fullPath, max(width-6, 10)))
	} else {
		b.WriteString(dimStyle.Render("none"))
	}
	return panelStyle.Width(width - 2).Render(b.String())
}

func (m *model) renderMenu(width int) string {
	style := panelStyle
	if m.mode == modeSelect {
		style = activePanelStyle
	}
	selected, hasSelection := m.actions.index()
	lines := make([]string, len(m.actions.items))
	for i, label := range m.actions.items {
		if hasSelection && i == selected {
			lines[i] = selectedStyle.Render("> " + label)
		} else {
			lines[i] = "  " + label
		}
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m *model) renderPrompt(width int) string {
	var title string
	switch m.mode {
	case modeRename:
		title = "Rename to"
	case modeDelete:
		title = "Delete? (y/n)"
	case modeCreate:
		title = "New file"
	}
	content := labelStyle.Render(title+": ") + m.input.view()
	return activePanelStyle.Width(width - 2).Render(content)
}

func (m *model) renderHelp(width int) string {
	content := titleStyle.Render("Keys") + "\n\n" + m.help.FullHelpView(m.keys.FullHelp())
	return activePanelStyle.Width(width - 2).Render(content)
}

func (m *model) renderStatusBar(width int) string {
	left := fmt.Sprintf(" %s | %d items", m.mode, m.files.count())
	right := m.help.ShortHelpView(m.keys.ShortHelp()) + " "
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n || n < 2 {
		return s
	}
	return string(runes[:n-1]) + "…"
}
