package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/gradebook/internal/infra/logger"
	"github.com/aalvaropc/gradebook/internal/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "gradebook",
		Short:        "Gradebook — TUI-first grade analysis for student marks",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			cleanup, _ := logger.Setup(logger.Config{
				Root:  wd,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			svc := newServices()
			deps := tui.Deps{
				Importer: svc.importer,
				Exporter: svc.exporter,
				Logger:   logger.L(),
				Debug:    debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .gradebook/logs/gradebook.log")

	cmd.AddCommand(reportCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
