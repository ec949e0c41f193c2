package matching

import (
	"github.com/roomradar/roommate-matching/internal/domain"
)

// Violation reports why a candidate was excluded before scoring.
type Violation struct {
	Violated bool
	Reason   string
}

// IsDealbreakerViolation checks the seeker's hard constraints against a
// candidate, short-circuiting on the first failure. A seeker without a
// dealbreakers block accepts every candidate here; incompatibilities then
// only show up as low dimension scores.
func IsDealbreakerViolation(seeker, candidate domain.Profile) Violation {
	db := seeker.Dealbreakers
	if db == nil {
		return Violation{}
	}

	if db.NoSmokers && candidate.Smoking {
		return Violation{Violated: true, Reason: "smoker rejected by dealbreaker"}
	}

	if db.NoDrinkers && candidate.Drinking {
		return Violation{Violated: true, Reason: "drinker rejected by dealbreaker"}
	}

	sMin, sMax := budgetBounds(seeker.BudgetRange)
	cMin, cMax := budgetBounds(candidate.BudgetRange)
	if minInt(sMax, cMax) < maxInt(sMin, cMin) {
		return Violation{Violated: true, Reason: "zero budget overlap"}
	}

	if db.MaxBudget > 0 && candidate.BudgetRange.Min > db.MaxBudget {
		return Violation{Violated: true, Reason: "candidate budget exceeds max budget dealbreaker"}
	}

	switch db.GenderPreference {
	case "", "any":
	case "same_gender":
		if !equalFold(seeker.Gender, candidate.Gender) {
			return Violation{Violated: true, Reason: "gender preference mismatch"}
		}
	default:
		// explicit male / female preference
		if !equalFold(candidate.Gender, db.GenderPreference) {
			return Violation{Violated: true, Reason: "gender preference mismatch (" + db.GenderPreference + " only)"}
		}
	}

	if db.SameCity && !equalFold(seeker.Location.City, candidate.Location.City) {
		return Violation{Violated: true, Reason: "different city, same city required"}
	}

	return Violation{}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
