// Package catalog holds the trail records shown by thru.
//
// A catalog file is versioned TOML or YAML with two arrays: trails, the
// ordered records, and locations, the coordinates used to place them on the
// map. The default file and a few outline route tracks are embedded in the
// binary. A Catalog is built once at startup and never changes afterwards;
// every accessor returns copies.
//
// The rating helpers turn display strings into render-ready values: Stars
// parses "k/5" ratings, CategoryForBudget bands the 1-4 budget tier, and
// ScalePercent positions 1-5 scales on a bar.
package catalog
