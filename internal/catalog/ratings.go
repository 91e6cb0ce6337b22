package catalog

import (
	"strconv"
	"strings"
)

// MaxStars is the number of symbols in a rating row.
const MaxStars = 5

// Stars returns the filled-star count for a "k/5" rating string. The leading
// integer of k is used, so "4.5/5" gives 4. Values that do not start with a
// number or fall outside 0..5 yield 0.
func Stars(rating string) int {
	head, _, _ := strings.Cut(rating, "/")
	k, ok := leadingInt(head)
	if !ok || k < 0 || k > MaxStars {
		return 0
	}
	return k
}

// leadingInt parses an optional sign and the digits that follow it,
// ignoring anything after them.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// StarString renders a rating as MaxStars symbols.
func StarString(rating string, filled, empty string) string {
	k := Stars(rating)
	return strings.Repeat(filled, k) + strings.Repeat(empty, MaxStars-k)
}

// BudgetCategory groups the 1-4 budget tier into display bands.
type BudgetCategory int

const (
	BudgetLow BudgetCategory = iota
	BudgetModerate
	BudgetHigh
	BudgetPremium
)

// CategoryForBudget maps a tier: <=1 low, 2 moderate, 3 high, >=4 premium.
func CategoryForBudget(level int) BudgetCategory {
	switch {
	case level <= 1:
		return BudgetLow
	case level == 2:
		return BudgetModerate
	case level == 3:
		return BudgetHigh
	default:
		return BudgetPremium
	}
}

func (b BudgetCategory) String() string {
	switch b {
	case BudgetLow:
		return "low"
	case BudgetModerate:
		return "moderate"
	case BudgetHigh:
		return "high"
	default:
		return "premium"
	}
}

// ScalePercent positions a 1-5 scale value on a 0-100 bar.
func ScalePercent(value int) int {
	pct := (value - 1) * 100 / 4
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ShortHighestPoint drops the parenthesised elevation from a highest-point label.
func ShortHighestPoint(label string) string {
	head, _, _ := strings.Cut(label, "(")
	return strings.TrimSpace(head)
}
