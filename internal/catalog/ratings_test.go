package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStars(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0/5", 0},
		{"1/5", 1},
		{"3/5", 3},
		{"5/5", 5},
		{" 4 / 5 ", 4},
		{"4", 4},
		{"6/5", 0},
		{"-1/5", 0},
		{"abc", 0},
		{"", 0},
		{"/5", 0},
		{"4.5/5", 4},
		{"4 /5", 4},
		{"3/5 (hard)", 3},
		{"+2/5", 2},
		{"x3/5", 0},
		{"99999999999999999999/5", 0},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Stars(tc.in))
		})
	}
}

func TestStarString_AlwaysFiveSymbols(t *testing.T) {
	for k := 0; k <= 5; k++ {
		rating := string(rune('0'+k)) + "/5"
		got := StarString(rating, "*", ".")
		assert.Len(t, got, MaxStars)
		assert.Equal(t, k, countRune(got, '*'), rating)
	}
	assert.Equal(t, ".....", StarString("9/5", "*", "."))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

func TestCategoryForBudget(t *testing.T) {
	cases := []struct {
		level int
		want  BudgetCategory
	}{
		{-3, BudgetLow},
		{0, BudgetLow},
		{1, BudgetLow},
		{2, BudgetModerate},
		{3, BudgetHigh},
		{4, BudgetPremium},
		{9, BudgetPremium},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CategoryForBudget(tc.level), "level %d", tc.level)
	}
	assert.Equal(t, "moderate", BudgetModerate.String())
}

func TestScalePercent(t *testing.T) {
	assert.Equal(t, 0, ScalePercent(1))
	assert.Equal(t, 25, ScalePercent(2))
	assert.Equal(t, 50, ScalePercent(3))
	assert.Equal(t, 100, ScalePercent(5))
	assert.Equal(t, 0, ScalePercent(0))
	assert.Equal(t, 100, ScalePercent(7))
}

func TestShortHighestPoint(t *testing.T) {
	assert.Equal(t, "Forester Pass", ShortHighestPoint("Forester Pass (4,009 m / 13,153 ft)"))
	assert.Equal(t, "Kuwohi", ShortHighestPoint("Kuwohi (formerly Clingmans Dome) (2,025 m)"))
	assert.Equal(t, "Somewhere", ShortHighestPoint("Somewhere"))
}

func TestSummarize(t *testing.T) {
	s := Summarize(Trail{
		Name:                "Hayduke Trail",
		PhysicalDifficulty:  "5/5",
		AdventureDifficulty: "x/5",
		SceneryRating:       "4/5",
		BudgetLevel:         3,
		EstimatedDuration:   "8-10 weeks",
	})
	assert.Equal(t, 5, s.Physical)
	assert.Equal(t, 0, s.Adventure)
	assert.Equal(t, 4, s.Scenery)
	assert.Equal(t, BudgetHigh, s.BudgetCategory)
	assert.Equal(t, "8-10 weeks", s.Duration)
	assert.False(t, s.HasRoute)
}
