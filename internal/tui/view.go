package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("Gradebook") + "\n" +
		m.theme.Subtitle.Render("student marks, grades and statistics") + "\n"

	status := m.statusLine()

	switch m.scr {
	case screenMenu:
		parts := []string{header, status}
		if w := m.warningsBlock(); w != "" {
			parts = append(parts, w)
		}
		parts = append(parts,
			m.theme.Card.Render(m.menu.View()),
			m.theme.Help.Render("↑/↓ navigate • enter select • / search • q quit"),
		)
		return wrap.Render(strings.Join(parts, "\n"))

	case screenAdd:
		card := m.screenCard("Add student",
			m.nameInput.View()+"\n"+m.markInput.View(),
			"enter next/submit • tab switch • esc back")
		return wrap.Render(strings.Join([]string{header, status, card}, "\n"))

	case screenImport:
		note := m.theme.Help.Render("First row is a header. Import replaces the current roster.")
		card := m.screenCard("Import CSV",
			m.pathInput.View()+"\n"+note,
			"enter import • esc back")
		return wrap.Render(strings.Join([]string{header, status, card}, "\n"))

	case screenExport:
		note := m.theme.Help.Render("The extension picks the format: .xlsx or CSV.")
		card := m.screenCard("Export results",
			m.pathInput.View()+"\n"+note,
			"enter export • esc back")
		return wrap.Render(strings.Join([]string{header, status, card}, "\n"))

	case screenDisplay:
		parts := []string{
			header,
			m.theme.Card.Render(m.display.View()),
			m.theme.Help.Render("↑/↓ scroll • esc/q back"),
		}
		return wrap.Render(strings.Join(parts, "\n"))

	default:
		return wrap.Render(header + "\nunknown state")
	}
}

func (m model) screenCard(title, body, help string) string {
	return m.theme.Card.Render(
		m.theme.Title.Render(title) + "\n\n" + body + "\n\n" + m.theme.Help.Render(help),
	)
}

func (m model) statusLine() string {
	roster := m.theme.Help.Render(fmt.Sprintf("Roster: %d students", len(m.roster)))
	if m.toast == "" {
		return roster
	}
	if m.toastErr {
		return roster + "\n" + m.theme.Error.Render(m.toast)
	}
	return roster + "\n" + m.theme.Status.Render(m.toast)
}

func (m model) warningsBlock() string {
	if len(m.lastWarnings) == 0 {
		return ""
	}

	const maxShown = 5
	lines := make([]string, 0, maxShown+2)
	lines = append(lines, "Skipped rows:")
	for i, w := range m.lastWarnings {
		if i == maxShown {
			lines = append(lines, fmt.Sprintf("  … and %d more", len(m.lastWarnings)-maxShown))
			break
		}
		lines = append(lines, "  "+w.String())
	}
	return m.theme.Help.Render(strings.Join(lines, "\n"))
}
