package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var input string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check a CSV for importable rows without keeping them",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := requireInput(input)
			if err != nil {
				return err
			}

			svc := newServices()
			count, warnings, err := svc.validator.Execute(path)
			if err != nil {
				return err
			}

			for _, w := range warnings {
				fmt.Printf("skipped %s\n", w)
			}
			if len(warnings) > 0 {
				fmt.Printf("OK (%d records, %d rows skipped)\n", count, len(warnings))
				return nil
			}
			fmt.Printf("OK (%d records)\n", count)
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "CSV file with a header row and name,mark lines (required)")

	_ = c.MarkFlagRequired("input")
	return c
}
