package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/gradebook/internal/domain"
	"github.com/aalvaropc/gradebook/internal/report"
)

func reportCmd() *cobra.Command {
	var input string
	var format string

	c := &cobra.Command{
		Use:   "report",
		Short: "Import a CSV and print the graded results table",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := requireInput(input)
			if err != nil {
				return err
			}

			svc := newServices()
			roster, warnings, err := svc.importer.Execute(path)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "skipped %s\n", w)
			}

			a, err := domain.Analyze(roster, domain.DefaultScale())
			if err != nil {
				return err
			}

			return printReport(os.Stdout, a, format)
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "CSV file with a header row and name,mark lines (required)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("input")
	return c
}

func printReport(w io.Writer, a domain.Analysis, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case "pretty", "":
		return report.Render(w, a)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
