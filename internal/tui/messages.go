package tui

import "github.com/aalvaropc/gradebook/internal/domain"

type rosterLoadedMsg struct {
	path     string
	roster   domain.Roster
	warnings []domain.ImportWarning
	err      error
}

type exportDoneMsg struct {
	path     string
	analysis domain.Analysis
	err      error
}
