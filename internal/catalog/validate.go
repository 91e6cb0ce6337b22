package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Issue is a data problem found by Validate. Warnings do not stop the
// catalog from loading; they mark values the UI shows with a fallback.
type Issue struct {
	Trail   string
	Field   string
	Message string
	Warning bool
}

func (i Issue) String() string {
	level := "error"
	if i.Warning {
		level = "warning"
	}
	if i.Trail == "" {
		return fmt.Sprintf("%s: %s: %s", level, i.Field, i.Message)
	}
	return fmt.Sprintf("%s: %s: %s: %s", level, i.Trail, i.Field, i.Message)
}

// Validate checks a Document beyond what Build enforces. Errors cover
// records Build rejects; everything else is a warning.
func (d Document) Validate() []Issue {
	var issues []Issue
	add := func(trail, field, msg string, warning bool) {
		issues = append(issues, Issue{Trail: trail, Field: field, Message: msg, Warning: warning})
	}

	if len(d.Trails) == 0 {
		add("", "trails", "catalog has no trails", false)
	}

	names := make(map[string]struct{}, len(d.Trails))
	for i, t := range d.Trails {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			add("", fmt.Sprintf("trails[%d].name", i), "name is empty", false)
			continue
		}
		if _, dup := names[name]; dup {
			add(name, "name", "duplicate trail name", false)
		}
		names[name] = struct{}{}

		for field, rating := range map[string]string{
			"physical_difficulty":  t.PhysicalDifficulty,
			"adventure_difficulty": t.AdventureDifficulty,
			"scenery_rating":       t.SceneryRating,
		} {
			if !validRating(rating) {
				add(name, field, fmt.Sprintf("%q is not a k/5 rating, shown as %d stars", rating, Stars(rating)), true)
			}
		}
		if t.BudgetLevel < 1 || t.BudgetLevel > 4 {
			add(name, "budget_level", fmt.Sprintf("%d is outside 1-4", t.BudgetLevel), true)
		}
		if t.SocialScale < 1 || t.SocialScale > 5 {
			add(name, "social_scale", fmt.Sprintf("%d is outside 1-5", t.SocialScale), true)
		}
		if t.WildernessScale < 1 || t.WildernessScale > 5 {
			add(name, "wilderness_scale", fmt.Sprintf("%d is outside 1-5", t.WildernessScale), true)
		}
	}

	for _, name := range d.Unlocated() {
		add(strings.TrimSpace(name), "location", "no coordinates, trail is left off the map", true)
	}
	for i, loc := range d.Locations {
		name := strings.TrimSpace(loc.Name)
		if _, ok := names[name]; !ok {
			add(name, fmt.Sprintf("locations[%d]", i), "location does not match any trail", true)
		}
		if loc.Lat < -90 || loc.Lat > 90 || loc.Lon < -180 || loc.Lon > 180 {
			add(name, fmt.Sprintf("locations[%d]", i), fmt.Sprintf("coordinate %.4f,%.4f is out of range", loc.Lat, loc.Lon), true)
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if !i.Warning {
			return true
		}
	}
	return false
}

// validRating reports whether s is "k/5" with k in 0..5.
func validRating(s string) bool {
	head, tail, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || strings.TrimSpace(tail) != strconv.Itoa(MaxStars) {
		return false
	}
	k, err := strconv.Atoi(strings.TrimSpace(head))
	return err == nil && k >= 0 && k <= MaxStars
}
