package catalog

// CardSummary is the derived display data for one trail card.
type CardSummary struct {
	Name      string
	Subtitle  string
	Country   string
	Distance  string
	Duration  string
	Landscape string

	Physical  int
	Adventure int
	Scenery   int

	Budget         string
	BudgetCategory BudgetCategory
	HasRoute       bool
}

// Summarize derives the card view of a trail.
func Summarize(t Trail) CardSummary {
	return CardSummary{
		Name:           t.Name,
		Subtitle:       t.Subtitle,
		Country:        t.Country,
		Distance:       t.Distance,
		Duration:       t.EstimatedDuration,
		Landscape:      t.Landscape,
		Physical:       Stars(t.PhysicalDifficulty),
		Adventure:      Stars(t.AdventureDifficulty),
		Scenery:        Stars(t.SceneryRating),
		Budget:         t.Budget,
		BudgetCategory: CategoryForBudget(t.BudgetLevel),
		HasRoute:       t.HasRoute(),
	}
}
