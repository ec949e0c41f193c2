package matching

import (
	"fmt"
	"strings"

	"github.com/roomradar/roommate-matching/internal/domain"
)

// GenerateExplanations turns a score breakdown and conflict list into
// ordered human-readable statements. No scoring happens here: every line
// is a template keyed on bands and conditions computed upstream.
func GenerateExplanations(seeker, candidate domain.Profile, breakdown map[string]domain.DimensionScore, conflicts []domain.Conflict) []domain.Explanation {
	explanations := []domain.Explanation{}

	if intent, ok := breakdown[DimIntentAlignment]; ok {
		seekerMode := lifeModeOrDefault(seeker.LifeIntent.LifeMode)
		candidateMode := lifeModeOrDefault(candidate.LifeIntent.LifeMode)

		switch {
		case seekerMode == candidateMode:
			explanations = append(explanations, domain.Explanation{
				Category: "Intent Alignment", Type: "positive",
				Text: `Both of you are in "` + seekerMode + `" life mode — you'll understand each other's pace and priorities.`,
			})
		case seekerMode == "balanced" || candidateMode == "balanced":
			explanations = append(explanations, domain.Explanation{
				Category: "Intent Alignment", Type: "neutral",
				Text: `One of you is in "balanced" mode, which is adaptable. Minor adjustments may be needed.`,
			})
		default:
			explanations = append(explanations, domain.Explanation{
				Category: "Intent Alignment", Type: "negative",
				Text: `You're in "` + seekerMode + `" mode, they're in "` + candidateMode + `" mode. This is the biggest predictor of roommate friction.`,
			})
		}

		if shared, ok := intent.Details["shared_goals"].([]string); ok && len(shared) > 0 {
			labels := make([]string, len(shared))
			for i, g := range shared {
				labels[i] = strings.ReplaceAll(g, "_", " ")
			}
			explanations = append(explanations, domain.Explanation{
				Category: "Shared Goals", Type: "positive",
				Text: fmt.Sprintf("You both share %d life goal(s): %s. Shared purpose builds stronger co-living.",
					len(shared), strings.Join(labels, ", ")),
			})
		}
	}

	if lifestyle, ok := breakdown[DimLifestyle]; ok {
		switch {
		case lifestyle.Score >= 70:
			explanations = append(explanations, domain.Explanation{
				Category: "Lifestyle", Type: "positive",
				Text: "Your daily habits (sleep, cleanliness, noise) are well aligned. Fewer day-to-day irritations.",
			})
		case lifestyle.Score >= 40:
			explanations = append(explanations, domain.Explanation{
				Category: "Lifestyle", Type: "neutral",
				Text: "Some lifestyle differences exist. Workable with clear ground rules.",
			})
		default:
			explanations = append(explanations, domain.Explanation{
				Category: "Lifestyle", Type: "negative",
				Text: "Significant lifestyle gaps. Cleanliness, sleep, or noise differences could cause daily tension.",
			})
		}
	}

	if social, ok := breakdown[DimSocial]; ok {
		if shared := sharedHobbies(seeker.Hobbies, candidate.Hobbies); len(shared) > 0 {
			explanations = append(explanations, domain.Explanation{
				Category: "Personality", Type: "positive",
				Text: "You share interests: " + strings.Join(shared, ", ") + ". Common ground for bonding.",
			})
		}
		if ieGap, ok := social.Details["ie_gap"].(int); ok && ieGap >= socialEnergyGap {
			explanations = append(explanations, domain.Explanation{
				Category: "Personality", Type: "negative",
				Text: "Very different social styles — one needs space, the other needs people. Set boundaries early.",
			})
		}
	}

	if budget, ok := breakdown[DimBudgetOverlap]; ok {
		switch {
		case budget.Score >= 80:
			explanations = append(explanations, domain.Explanation{
				Category: "Budget", Type: "positive",
				Text: "Strong budget overlap. You're looking in the same financial range.",
			})
		case budget.Score >= 40:
			explanations = append(explanations, domain.Explanation{
				Category: "Budget", Type: "neutral",
				Text: "Partial budget overlap. Might work, but discuss finances early.",
			})
		default:
			explanations = append(explanations, domain.Explanation{
				Category: "Budget", Type: "negative",
				Text: "Little to no budget overlap. Financial expectations don't align.",
			})
		}
	}

	if location, ok := breakdown[DimLocationMatch]; ok {
		switch {
		case location.Score == 100:
			explanations = append(explanations, domain.Explanation{
				Category: "Location", Type: "positive",
				Text: "You live in the same city — meeting up and viewing rooms together is easy.",
			})
		case location.Score >= 60:
			explanations = append(explanations, domain.Explanation{
				Category: "Location", Type: "neutral",
				Text: "Same state, different cities. One of you would need to relocate.",
			})
		default:
			explanations = append(explanations, domain.Explanation{
				Category: "Location", Type: "negative",
				Text: "Different states. Factor in a bigger move before committing.",
			})
		}
	}

	if timing, ok := breakdown[DimMoveInTiming]; ok {
		switch {
		case timing.Score >= 80:
			explanations = append(explanations, domain.Explanation{
				Category: "Move-in Timing", Type: "positive",
				Text: "Your move-in dates line up closely. No one waits around paying double rent.",
			})
		case timing.Score >= 40:
			explanations = append(explanations, domain.Explanation{
				Category: "Move-in Timing", Type: "neutral",
				Text: "Move-in dates are a few weeks apart. Plan the gap before signing anything.",
			})
		default:
			explanations = append(explanations, domain.Explanation{
				Category: "Move-in Timing", Type: "negative",
				Text: "Move-in dates are months apart. Timing alone could sink this match.",
			})
		}
	}

	highConflicts := 0
	for _, c := range conflicts {
		if c.Severity == SeverityHigh {
			highConflicts++
		}
	}
	switch {
	case highConflicts > 0:
		explanations = append(explanations, domain.Explanation{
			Category: "Conflict Warning", Type: "negative",
			Text: fmt.Sprintf("%d high-severity conflict(s) predicted. Review carefully before deciding.", highConflicts),
		})
	case len(conflicts) == 0:
		explanations = append(explanations, domain.Explanation{
			Category: "Conflict Check", Type: "positive",
			Text: "No major conflicts predicted. This is a promising match!",
		})
	}

	return explanations
}
