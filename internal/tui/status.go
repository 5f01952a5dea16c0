package tui

import (
	"errors"

	"github.com/aalvaropc/gradebook/internal/domain"
)

const msgNoRecords = "No student records yet. Add or import first."

// statusMessage maps an error to the one-line status shown above the menu.
// Expected kinds get a friendly line; anything else points at the logs.
func statusMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindValidation:
			return domain.UserMessage(err)
		case domain.KindEmptyInput:
			return msgNoRecords
		case domain.KindFile:
			return "File error: " + domain.UserMessage(err)
		case domain.KindParse:
			return "Import failed: " + domain.UserMessage(err)
		}
	}

	return "Unexpected error (see logs)"
}
