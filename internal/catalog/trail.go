package catalog

import "strings"

// Trail is one long-distance hiking trail. Trails are immutable once a
// Catalog has been built from them.
type Trail struct {
	Name     string `toml:"name" yaml:"name"`
	Subtitle string `toml:"subtitle" yaml:"subtitle"`
	Country  string `toml:"country" yaml:"country"`
	Flag     string `toml:"flag" yaml:"flag"`
	Image    string `toml:"image" yaml:"image"`

	Distance            string `toml:"distance" yaml:"distance"`
	PhysicalDifficulty  string `toml:"physical_difficulty" yaml:"physical_difficulty"`
	AdventureDifficulty string `toml:"adventure_difficulty" yaml:"adventure_difficulty"`
	SceneryRating       string `toml:"scenery_rating" yaml:"scenery_rating"`

	Landscape         string `toml:"landscape" yaml:"landscape"`
	Specificity       string `toml:"specificity" yaml:"specificity"`
	IdealWindow       string `toml:"ideal_window" yaml:"ideal_window"`
	EstimatedDuration string `toml:"estimated_duration" yaml:"estimated_duration"`
	Budget            string `toml:"budget" yaml:"budget"`
	BudgetLevel       int    `toml:"budget_level" yaml:"budget_level"`
	Social            string `toml:"social" yaml:"social"`
	SocialScale       int    `toml:"social_scale" yaml:"social_scale"`
	WildernessScale   int    `toml:"wilderness_scale" yaml:"wilderness_scale"`
	Terrain           string `toml:"terrain" yaml:"terrain"`
	Why               string `toml:"why" yaml:"why"`
	HighestPoint      string `toml:"highest_point" yaml:"highest_point"`

	Dangers          []string `toml:"dangers" yaml:"dangers"`
	RegionsTraversed []string `toml:"regions_traversed" yaml:"regions_traversed"`

	// RouteURL points at a GPX or FIT track. Empty when the trail has no overlay.
	RouteURL string `toml:"route" yaml:"route"`
}

// HasRoute reports whether the trail carries a route overlay reference.
func (t Trail) HasRoute() bool {
	return strings.TrimSpace(t.RouteURL) != ""
}

func (t Trail) clone() Trail {
	dup := t
	dup.Dangers = cloneStrings(t.Dangers)
	dup.RegionsTraversed = cloneStrings(t.RegionsTraversed)
	return dup
}

// Location places a trail on the map. It refers to a Trail by name only.
type Location struct {
	Name string  `toml:"name" yaml:"name"`
	Lat  float64 `toml:"lat" yaml:"lat"`
	Lon  float64 `toml:"lon" yaml:"lon"`
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
