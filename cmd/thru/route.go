package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/thru/internal/app"
)

func newRouteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "route <trail|ref>",
		Short: "Fetch a route overlay and print its summary",
		Long: `Fetch a route overlay and print its summary.

The argument is either a trail name from the catalog or a route reference:
an http(s) URL, a file path, or builtin:routes/<file>. GPX and FIT files
are supported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, trails, err := opts.loadTrails()
			if err != nil {
				return err
			}

			ref := strings.TrimSpace(args[0])
			if trail, ok := trails.Catalog.ByName(ref); ok {
				if !trail.HasRoute() {
					return fmt.Errorf("trail %q has no route", trail.Name)
				}
				ref = trail.RouteURL
			}

			track, err := app.NewRouteClient(cfg).Fetch(cmd.Context(), ref)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			name := track.Name
			if name == "" {
				name = ref
			}
			fmt.Fprintf(out, "%-10s %s\n", "Route:", name)
			fmt.Fprintf(out, "%-10s %d\n", "Points:", track.Len())
			fmt.Fprintf(out, "%-10s %.1f km\n", "Length:", track.Length()/1000)
			if lo, hi, ok := track.Elevation(); ok {
				fmt.Fprintf(out, "%-10s %.0f-%.0f m\n", "Elevation:", lo, hi)
			}
			if b := track.Bounds(); !b.Empty() {
				fmt.Fprintf(out, "%-10s %.4f,%.4f to %.4f,%.4f\n", "Bounds:", b.Min.Lat, b.Min.Lon, b.Max.Lat, b.Max.Lon)
			}
			return nil
		},
	}
}
