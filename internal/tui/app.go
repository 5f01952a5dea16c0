package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/gradebook/internal/domain"
	"github.com/aalvaropc/gradebook/internal/report"
)

type screen int

const (
	screenMenu screen = iota
	screenAdd
	screenImport
	screenDisplay
	screenExport
)

type menuAction int

const (
	actionAdd menuAction = iota
	actionImport
	actionSample
	actionDisplay
	actionExport
	actionQuit
)

type menuItem struct {
	title  string
	desc   string
	action menuAction
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	nameInput textinput.Model
	markInput textinput.Model
	addFocus  int

	pathInput textinput.Model

	display viewport.Model

	roster       domain.Roster
	lastWarnings []domain.ImportWarning

	toast    string
	toastErr bool

	width  int
	height int
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := []list.Item{
		menuItem{"Add student", "Type a name and a mark", actionAdd},
		menuItem{"Import CSV", "Replace the roster from a name,mark file", actionImport},
		menuItem{"Load sample roster", "Six demo students to play with", actionSample},
		menuItem{"Display results", "Graded table, statistics and distribution", actionDisplay},
		menuItem{"Export results", "Write name,mark,grade to CSV or XLSX", actionExport},
		menuItem{"Quit", "Exit Gradebook", actionQuit},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Gradebook"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	name := textinput.New()
	name.Placeholder = "student name"
	name.CharLimit = 64

	mark := textinput.New()
	mark.Placeholder = "mark 0-100"
	mark.CharLimit = 8

	path := textinput.New()
	path.Placeholder = "path/to/marks.csv"
	path.CharLimit = 256

	return model{
		theme:     DefaultTheme(),
		deps:      deps,
		scr:       screenMenu,
		menu:      l,
		nameInput: name,
		markInput: mark,
		pathInput: path,
		display:   viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-12)
		m.display.Width = msg.Width - 8
		m.display.Height = msg.Height - 10
		return m, nil

	case rosterLoadedMsg:
		m.scr = screenMenu
		m.lastWarnings = msg.warnings
		if msg.err != nil {
			m.toast, m.toastErr = statusMessage(msg.err), true
			return m, nil
		}
		m.roster = msg.roster
		m.toast = fmt.Sprintf("Imported %d records from %s", len(msg.roster), msg.path)
		if n := len(msg.warnings); n > 0 {
			m.toast += fmt.Sprintf(" (%d rows skipped)", n)
		}
		m.toastErr = false
		return m, nil

	case exportDoneMsg:
		m.scr = screenMenu
		if msg.err != nil {
			m.toast, m.toastErr = statusMessage(msg.err), true
			return m, nil
		}
		m.toast = fmt.Sprintf("Exported %d rows to %s", msg.analysis.Count(), msg.path)
		m.toastErr = false
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateFocused(msg)
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.scr {
	case screenMenu:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.menu.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		case "enter":
			if m.menu.FilterState() == list.Filtering {
				break
			}
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			return m.dispatch(it.action)
		}

	case screenAdd:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.scr = screenMenu
			return m, nil
		case "tab", "shift+tab":
			m.addFocus = (m.addFocus + 1) % 2
			return m, m.focusAddInputs()
		case "enter":
			if m.addFocus == 0 {
				m.addFocus = 1
				return m, m.focusAddInputs()
			}
			return m.submitAdd()
		}

	case screenImport, screenExport:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.scr = screenMenu
			return m, nil
		case "enter":
			return m.submitPath()
		}

	case screenDisplay:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q", "b":
			m.scr = screenMenu
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

// updateFocused forwards a message to whichever component owns the screen.
func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.scr {
	case screenMenu:
		m.menu, cmd = m.menu.Update(msg)
	case screenAdd:
		if m.addFocus == 0 {
			m.nameInput, cmd = m.nameInput.Update(msg)
		} else {
			m.markInput, cmd = m.markInput.Update(msg)
		}
	case screenImport, screenExport:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case screenDisplay:
		m.display, cmd = m.display.Update(msg)
	}
	return m, cmd
}

func (m model) dispatch(a menuAction) (tea.Model, tea.Cmd) {
	switch a {
	case actionAdd:
		m.scr = screenAdd
		m.addFocus = 0
		m.nameInput.SetValue("")
		m.markInput.SetValue("")
		return m, m.focusAddInputs()

	case actionImport:
		m.scr = screenImport
		m.pathInput.SetValue("")
		m.pathInput.Placeholder = "path/to/marks.csv"
		return m, m.pathInput.Focus()

	case actionSample:
		m.roster = domain.SampleRoster()
		m.lastWarnings = nil
		m.toast = fmt.Sprintf("Loaded sample roster (%d students)", len(m.roster))
		m.toastErr = false
		m.deps.log().Info("roster.sample", "records", len(m.roster))
		return m, nil

	case actionDisplay:
		analysis, err := domain.Analyze(m.roster, domain.DefaultScale())
		if err != nil {
			m.toast, m.toastErr = statusMessage(err), true
			return m, nil
		}
		m.display.SetContent(report.Text(analysis))
		m.display.GotoTop()
		m.scr = screenDisplay
		return m, nil

	case actionExport:
		if m.roster.IsEmpty() {
			m.toast, m.toastErr = msgNoRecords, true
			return m, nil
		}
		m.scr = screenExport
		m.pathInput.SetValue("results.csv")
		m.pathInput.Placeholder = "results.csv or results.xlsx"
		return m, m.pathInput.Focus()

	case actionQuit:
		return m, tea.Quit
	}

	return m, nil
}

func (m *model) focusAddInputs() tea.Cmd {
	if m.addFocus == 0 {
		m.markInput.Blur()
		return m.nameInput.Focus()
	}
	m.nameInput.Blur()
	return m.markInput.Focus()
}

func (m model) submitAdd() (tea.Model, tea.Cmd) {
	mark, err := domain.ParseMark(m.markInput.Value())
	if err != nil {
		m.toast, m.toastErr = statusMessage(err), true
		return m, nil
	}

	rec, err := domain.NewRecord(m.nameInput.Value(), mark)
	if err != nil {
		m.toast, m.toastErr = statusMessage(err), true
		return m, nil
	}

	m.roster = append(m.roster, rec)
	m.deps.log().Info("roster.add", "name", rec.Name, "mark", rec.Mark, "records", len(m.roster))

	m.toast = fmt.Sprintf("Added %s (%s)", rec.Name, domain.FormatMark(rec.Mark))
	m.toastErr = false
	m.nameInput.SetValue("")
	m.markInput.SetValue("")
	m.addFocus = 0
	m.scr = screenMenu
	return m, nil
}

func (m model) submitPath() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.pathInput.Value())
	if path == "" {
		m.toast, m.toastErr = "Type a file path first.", true
		return m, nil
	}

	if m.scr == screenImport {
		return m, cmdImportRoster(m.deps, path)
	}
	return m, cmdExportResults(m.deps, path, m.roster)
}
