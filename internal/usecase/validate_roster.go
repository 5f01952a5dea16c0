package usecase

import (
	"github.com/aalvaropc/gradebook/internal/domain"
	"github.com/aalvaropc/gradebook/internal/ports"
)

// ValidateRoster checks an import file without loading it into a session.
type ValidateRoster struct {
	loader ports.RosterLoader
}

func NewValidateRoster(l ports.RosterLoader) *ValidateRoster {
	return &ValidateRoster{loader: l}
}

// Execute reports how many records would import and which rows would be
// skipped.
func (uc *ValidateRoster) Execute(path string) (int, []domain.ImportWarning, error) {
	roster, warnings, err := uc.loader.LoadRoster(path)
	if err != nil {
		return 0, warnings, err
	}
	return len(roster), warnings, nil
}
