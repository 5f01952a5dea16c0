package cli

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/gradebook/internal/infra/csvreport"
	"github.com/aalvaropc/gradebook/internal/infra/csvroster"
	"github.com/aalvaropc/gradebook/internal/infra/xlsxreport"
	"github.com/aalvaropc/gradebook/internal/usecase"
)

// services bundles the wired use cases shared by every subcommand.
type services struct {
	importer  *usecase.ImportRoster
	validator *usecase.ValidateRoster
	exporter  *usecase.ExportResults
}

func newServices() *services {
	loader := csvroster.NewLoader()
	return &services{
		importer:  usecase.NewImportRoster(loader),
		validator: usecase.NewValidateRoster(loader),
		exporter:  usecase.NewExportResults(csvreport.NewWriter(), xlsxreport.NewWriter()),
	}
}

func requireInput(flag string) (string, error) {
	in := strings.TrimSpace(flag)
	if in == "" {
		return "", fmt.Errorf("input file is required (use --input or -i)")
	}
	return in, nil
}
