package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/thru/internal/catalog"
)

var errInvalidCatalog = errors.New("catalog has errors")

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a trail catalog for problems",
		Long: `Check a trail catalog for problems.

Errors (no trails, missing or duplicate names) stop the catalog from
loading. Warnings (bad ratings, unlocated trails, out-of-range scales)
only affect how trails are shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.catalogPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				cfg, err := opts.loadConfig()
				if err != nil {
					return err
				}
				path = cfg.CatalogPath
			}

			doc, err := catalog.Load(path)
			if err != nil {
				return err
			}

			issues := doc.Validate()
			out := cmd.OutOrStdout()
			warnings := 0
			for _, issue := range issues {
				if issue.Warning {
					warnings++
				}
				fmt.Fprintln(out, issue)
			}

			label := path
			if label == "" {
				label = "embedded catalog"
			}
			if catalog.HasErrors(issues) {
				fmt.Fprintf(out, "%s: %d errors, %d warnings\n", label, len(issues)-warnings, warnings)
				return errInvalidCatalog
			}
			fmt.Fprintf(out, "%s: %d trails ok, %d warnings\n", label, len(doc.Trails), warnings)
			return nil
		},
	}
}
