package main

import (
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/five82/thru/internal/app"
	"github.com/five82/thru/internal/catalog"
	"github.com/five82/thru/internal/config"
)

const (
	formatText = "text"
	formatTOML = "toml"
	formatYAML = "yaml"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Display one trail with full details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, trails, err := opts.loadTrails()
			if err != nil {
				return err
			}

			trail, ok := trails.Catalog.ByName(strings.TrimSpace(args[0]))
			if !ok {
				return fmt.Errorf("trail %q not found", args[0])
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case formatText:
				writeTrailText(out, cfg, trails, trail)
				return nil
			case formatTOML:
				data, err := toml.Marshal(fragment(trails, trail))
				if err != nil {
					return fmt.Errorf("encode toml: %w", err)
				}
				_, err = out.Write(data)
				return err
			case formatYAML:
				data, err := yaml.Marshal(fragment(trails, trail))
				if err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				_, err = out.Write(data)
				return err
			default:
				return fmt.Errorf("unknown format %q (want text, toml or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text, toml or yaml")
	return cmd
}

// fragment is a one-trail catalog document that can be loaded back with
// --catalog.
func fragment(trails app.Trails, trail catalog.Trail) catalog.Document {
	doc := catalog.Document{Version: trails.Document.Version, Trails: []catalog.Trail{trail}}
	for _, loc := range trails.Document.Locations {
		if strings.TrimSpace(loc.Name) == trail.Name {
			doc.Locations = append(doc.Locations, loc)
		}
	}
	return doc
}

func writeTrailText(w io.Writer, cfg config.Config, trails app.Trails, t catalog.Trail) {
	title := t.Name
	if t.Flag != "" {
		title = t.Flag + " " + title
	}
	fmt.Fprintln(w, title)
	if t.Subtitle != "" {
		fmt.Fprintln(w, t.Subtitle)
	}
	fmt.Fprintln(w)

	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%-18s %s\n", label+":", value)
	}
	stars := func(rating string) string {
		return catalog.StarString(rating, "★", "☆")
	}

	field("Country", t.Country)
	field("Distance", t.Distance)
	field("Duration", t.EstimatedDuration)
	field("Best time", t.IdealWindow)
	field("Highest point", t.HighestPoint)
	field("Budget", fmt.Sprintf("%s (%s)", orDash(t.Budget), catalog.CategoryForBudget(t.BudgetLevel)))
	field("Physical", stars(t.PhysicalDifficulty))
	field("Adventure", stars(t.AdventureDifficulty))
	field("Scenery", stars(t.SceneryRating))
	field("Social", fmt.Sprintf("%s (%d/5)", orDash(t.Social), t.SocialScale))
	field("Wilderness", fmt.Sprintf("%d/5", t.WildernessScale))
	field("Landscape", t.Landscape)
	field("Terrain", t.Terrain)
	field("Dangers", strings.Join(t.Dangers, ", "))
	field("Regions", strings.Join(t.RegionsTraversed, ", "))
	field("Route", t.RouteURL)

	if at, ok := trails.Table.Lookup(t.Name); ok {
		field("Coordinates", fmt.Sprintf("%.4f, %.4f", at.Lat, at.Lon))
		field("Map tile", app.TileTemplate(cfg).At(at, cfg.Map.MaxZoom))
	} else {
		field("Coordinates", "not on the map")
	}

	if t.Why != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, t.Why)
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
