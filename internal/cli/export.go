package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var input string
	var out string

	c := &cobra.Command{
		Use:   "export",
		Short: "Import a CSV and export the graded results (format by extension)",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := requireInput(input)
			if err != nil {
				return err
			}
			dest := strings.TrimSpace(out)
			if dest == "" {
				return fmt.Errorf("output file is required (use --out or -o)")
			}

			svc := newServices()
			roster, warnings, err := svc.importer.Execute(path)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "skipped %s\n", w)
			}

			a, err := svc.exporter.Execute(dest, roster)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d rows to %s\n", a.Count(), dest)
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "CSV file with a header row and name,mark lines (required)")
	c.Flags().StringVarP(&out, "out", "o", "", "Destination file, .xlsx for a workbook, anything else for CSV (required)")

	_ = c.MarkFlagRequired("input")
	_ = c.MarkFlagRequired("out")
	return c
}
