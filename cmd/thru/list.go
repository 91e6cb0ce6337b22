package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/thru/internal/catalog"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trails in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, trails, err := opts.loadTrails()
			if err != nil {
				return err
			}

			rows := trails.Catalog.Filter(query)
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No trails found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOUNTRY\tDISTANCE\tSCENERY\tBUDGET\tMAP\tROUTE")
			for _, t := range rows {
				s := catalog.Summarize(t)
				_, located := trails.Table.Lookup(t.Name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					s.Name,
					s.Country,
					s.Distance,
					catalog.StarString(t.SceneryRating, "*", "."),
					s.BudgetCategory,
					yesNo(located),
					yesNo(s.HasRoute),
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&query, "filter", "f", "", "case-insensitive text matched against name, country, landscape and regions")
	return cmd
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}
