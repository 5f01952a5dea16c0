package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/gradebook/internal/domain"
)

func cmdImportRoster(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		if deps.Importer == nil {
			return rosterLoadedMsg{path: path, err: errors.New("Importer is nil")}
		}

		roster, warnings, err := deps.Importer.Execute(path)
		if err != nil {
			deps.log().Warn("roster.import.failed", "path", path, "err", err)
		} else {
			deps.log().Info("roster.import.ok", "path", path, "records", len(roster), "skipped", len(warnings))
		}

		return rosterLoadedMsg{path: path, roster: roster, warnings: warnings, err: err}
	}
}

func cmdExportResults(deps Deps, path string, roster domain.Roster) tea.Cmd {
	// Snapshot the roster: the update loop may append to it while the
	// command runs.
	snap := make(domain.Roster, len(roster))
	copy(snap, roster)

	return func() tea.Msg {
		if deps.Exporter == nil {
			return exportDoneMsg{path: path, err: errors.New("Exporter is nil")}
		}

		a, err := deps.Exporter.Execute(path, snap)
		if err != nil {
			deps.log().Warn("results.export.failed", "path", path, "err", err)
		} else {
			deps.log().Info("results.export.ok", "path", path, "rows", a.Count())
		}

		return exportDoneMsg{path: path, analysis: a, err: err}
	}
}
