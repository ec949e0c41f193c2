package matching

import (
	"strings"

	"github.com/roomradar/roommate-matching/internal/domain"
)

// Neutral defaults applied when an optional field is missing or out of its
// documented range. Sparse profiles never cause an error, they score as
// middle-of-the-road on the affected dimension.
const (
	defaultScale     = 3 // 1..5 scales: cleanliness, introvert/extrovert, struggle-stability
	defaultBudgetMin = 0
	defaultBudgetMax = 99999
)

// ordinalLevel maps low/medium/high onto 1/2/3. Anything else is the
// neutral 2.
func ordinalLevel(v string) int {
	switch strings.ToLower(v) {
	case "low":
		return 1
	case "high":
		return 3
	default:
		return 2
	}
}

// scaleOrDefault returns v when it is inside the 1..5 range, otherwise the
// neutral midpoint.
func scaleOrDefault(v int) int {
	if v < 1 || v > 5 {
		return defaultScale
	}
	return v
}

func sleepOrDefault(v string) string {
	switch strings.ToLower(v) {
	case "early", "late":
		return strings.ToLower(v)
	default:
		return "flexible"
	}
}

func weekendOrDefault(v string) string {
	switch strings.ToLower(v) {
	case "homebody", "outings":
		return strings.ToLower(v)
	default:
		return "mixed"
	}
}

func lifeModeOrDefault(v string) string {
	switch strings.ToLower(v) {
	case "growth", "chill":
		return strings.ToLower(v)
	default:
		return "balanced"
	}
}

// budgetBounds returns the effective budget range with missing bounds
// substituted by the documented defaults.
func budgetBounds(b domain.BudgetRange) (int, int) {
	min, max := b.Min, b.Max
	if min <= 0 {
		min = defaultBudgetMin
	}
	if max <= 0 {
		max = defaultBudgetMax
	}
	return min, max
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
