package tui

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/gradebook/internal/usecase"
)

type Deps struct {
	Importer *usecase.ImportRoster
	Exporter *usecase.ExportResults

	Logger *slog.Logger
	Debug  bool
}

func (d Deps) log() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
