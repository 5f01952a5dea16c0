package ports

import "github.com/aalvaropc/gradebook/internal/domain"

// RosterLoader loads student records from a source (e.g., a CSV file).
// Skipped rows come back as warnings alongside the loaded roster.
type RosterLoader interface {
	LoadRoster(path string) (domain.Roster, []domain.ImportWarning, error)
}
