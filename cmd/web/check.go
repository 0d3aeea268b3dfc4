package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errContentDrift = errors.New("content check failed")

func newCheckCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the content for language drift and unknown icon keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			problems := 0
			issues := append(a.store.Parity(), a.store.UnknownIcons()...)
			for _, issue := range issues {
				fmt.Fprintln(out, issue.String())
				problems++
			}
			for _, id := range a.store.IDs() {
				ui, _ := a.store.UI(id)
				for l, keys := range ui.MissingKeys() {
					for _, k := range keys {
						fmt.Fprintf(out, "%s: ui text %q missing in %s\n", id, k, l)
						problems++
					}
				}
			}
			if problems > 0 {
				return fmt.Errorf("%w: %d problem(s)", errContentDrift, problems)
			}
			fmt.Fprintf(out, "%d sites in sync\n", len(a.store.IDs()))
			return nil
		},
	}
}
