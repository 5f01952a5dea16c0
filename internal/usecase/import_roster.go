package usecase

import (
	"github.com/aalvaropc/gradebook/internal/domain"
	"github.com/aalvaropc/gradebook/internal/ports"
)

// ImportRoster loads a roster file. The result replaces whatever roster the
// caller held before; imports are never merged.
type ImportRoster struct {
	loader ports.RosterLoader
}

func NewImportRoster(l ports.RosterLoader) *ImportRoster {
	return &ImportRoster{loader: l}
}

func (uc *ImportRoster) Execute(path string) (domain.Roster, []domain.ImportWarning, error) {
	return uc.loader.LoadRoster(path)
}
