package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finitefield.org/landing-web/internal/export"
)

func newExportCommand(flags *rootFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export [site...]",
		Short: "Render the sites to static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()
			res, err := export.New(a.pages, a.logger).Export(cmd.Context(), out, args...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(res.Files), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}
