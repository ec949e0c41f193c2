package matching

import (
	"github.com/roomradar/roommate-matching/internal/domain"
)

// Conflict severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// PredictConflicts flags likely friction sources from raw profile fields.
// The rules are independent of the weighted score and of each other: every
// applicable rule contributes an entry. An empty result means no major
// conflicts were predicted.
func PredictConflicts(seeker, candidate domain.Profile) []domain.Conflict {
	conflicts := []domain.Conflict{}

	seekerMode := lifeModeOrDefault(seeker.LifeIntent.LifeMode)
	candidateMode := lifeModeOrDefault(candidate.LifeIntent.LifeMode)
	if (seekerMode == "growth" && candidateMode == "chill") ||
		(seekerMode == "chill" && candidateMode == "growth") {
		conflicts = append(conflicts, domain.Conflict{
			Type:     "life_mode_clash",
			Severity: SeverityHigh,
			Message: seeker.Name + ` is in "` + seekerMode + `" mode while ` + candidate.Name +
				` is in "` + candidateMode + `" mode. This can cause daily friction — one wants hustle, the other wants peace.`,
		})
	}

	ssGap := absInt(scaleOrDefault(seeker.LifeIntent.StruggleStabilityScale) -
		scaleOrDefault(candidate.LifeIntent.StruggleStabilityScale))
	switch {
	case ssGap >= struggleGapHigh:
		conflicts = append(conflicts, domain.Conflict{
			Type:     "struggle_stability_gap",
			Severity: SeverityHigh,
			Message:  "Big gap in comfort with uncertainty. One thrives in chaos, the other needs predictability. Expect tension around financial risks, schedules, and lifestyle changes.",
		})
	case ssGap == struggleGapMedium:
		conflicts = append(conflicts, domain.Conflict{
			Type:     "struggle_stability_gap",
			Severity: SeverityMedium,
			Message:  "Moderate difference on the struggle-stability spectrum. Manageable, but requires communication about expectations.",
		})
	}

	seekerSleep := sleepOrDefault(seeker.SleepSchedule)
	candidateSleep := sleepOrDefault(candidate.SleepSchedule)
	if (seekerSleep == "early" && candidateSleep == "late") ||
		(seekerSleep == "late" && candidateSleep == "early") {
		conflicts = append(conflicts, domain.Conflict{
			Type:     "sleep_schedule",
			Severity: SeverityMedium,
			Message:  "Opposite sleep schedules. Morning person vs. night owl — expect noise/light disturbances.",
		})
	}

	cleanGap := absInt(scaleOrDefault(seeker.CleanlinessLevel) - scaleOrDefault(candidate.CleanlinessLevel))
	switch {
	case cleanGap >= cleanGapHigh:
		conflicts = append(conflicts, domain.Conflict{
			Type:     "cleanliness_gap",
			Severity: SeverityHigh,
			Message:  "Very different cleanliness standards. This is one of the top reasons roommates fight.",
		})
	case cleanGap == cleanGapMedium:
		conflicts = append(conflicts, domain.Conflict{
			Type:     "cleanliness_gap",
			Severity: SeverityMedium,
			Message:  "Noticeable difference in cleanliness expectations. Set clear rules early.",
		})
	}

	// Severity depends on who is exposed to the smoke.
	if seeker.Smoking != candidate.Smoking {
		severity := SeverityHigh
		message := "Your potential roommate smokes. If you're sensitive to smoke, this is a dealbreaker."
		if seeker.Smoking {
			severity = SeverityMedium
			message = "You smoke but your potential roommate doesn't — they may be uncomfortable."
		}
		conflicts = append(conflicts, domain.Conflict{
			Type:     "smoking",
			Severity: severity,
			Message:  message,
		})
	}

	if ordinalLevel(seeker.NoiseTolerance) == 1 && ordinalLevel(candidate.GuestsFrequency) == 3 {
		conflicts = append(conflicts, domain.Conflict{
			Type:     "noise_guests_clash",
			Severity: SeverityHigh,
			Message:  "You prefer quiet, but your match has guests over frequently. Expect noise conflicts.",
		})
	}

	ieGap := absInt(scaleOrDefault(seeker.IntrovertExtrovertScale) -
		scaleOrDefault(candidate.IntrovertExtrovertScale))
	if ieGap >= socialEnergyGap {
		conflicts = append(conflicts, domain.Conflict{
			Type:     "social_energy",
			Severity: SeverityMedium,
			Message:  "Very different social energy levels. One needs lots of alone time, the other craves social interaction at home.",
		})
	}

	energyGap := absInt(ordinalLevel(seeker.LifeIntent.DailyEnergyLevel) -
		ordinalLevel(candidate.LifeIntent.DailyEnergyLevel))
	if energyGap >= energyLevelGap {
		conflicts = append(conflicts, domain.Conflict{
			Type:     "energy_mismatch",
			Severity: SeverityLow,
			Message:  "Different daily energy levels. Might cause minor friction in shared routines.",
		})
	}

	return conflicts
}
