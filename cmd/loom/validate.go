package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/theme"
)

func newValidateCmd(_ *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <theme-file>...",
		Short: "Check theme documents",
		Long:  `Parse and validate one or more theme documents without starting the gallery.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, paths []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range paths {
		doc, err := theme.Load(path)
		if err == nil {
			err = theme.Validate(doc)
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s\n  %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "✓ %s (%s %s)\n", path, doc.Name, doc.Version)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d theme documents invalid", failed, len(paths))
	}
	return nil
}
