package matching

import (
	"testing"

	"github.com/roomradar/roommate-matching/internal/domain"
)

func conflictOfType(conflicts []domain.Conflict, typ string) *domain.Conflict {
	for i := range conflicts {
		if conflicts[i].Type == typ {
			return &conflicts[i]
		}
	}
	return nil
}

func TestPredictConflicts_CompatiblePairHasNone(t *testing.T) {
	conflicts := PredictConflicts(tidyProfile("a"), tidyProfile("b"))
	if len(conflicts) != 0 {
		t.Fatalf("conflicts=%d want=0: %+v", len(conflicts), conflicts)
	}
}

func TestPredictConflicts_LifeModeClash(t *testing.T) {
	seeker := tidyProfile("a")
	candidate := tidyProfile("b")
	seeker.LifeIntent.LifeMode = "growth"
	candidate.LifeIntent.LifeMode = "chill"

	c := conflictOfType(PredictConflicts(seeker, candidate), "life_mode_clash")
	if c == nil || c.Severity != SeverityHigh {
		t.Fatalf("life mode clash=%+v want high severity", c)
	}

	// balanced vs growth is not a clash
	seeker.LifeIntent.LifeMode = "balanced"
	if c := conflictOfType(PredictConflicts(seeker, candidate), "life_mode_clash"); c != nil {
		t.Fatalf("unexpected clash for balanced mode: %+v", c)
	}
}

func TestPredictConflicts_StruggleStabilityGap(t *testing.T) {
	seeker := tidyProfile("a")
	candidate := tidyProfile("b")

	seeker.LifeIntent.StruggleStabilityScale = 1
	candidate.LifeIntent.StruggleStabilityScale = 5
	c := conflictOfType(PredictConflicts(seeker, candidate), "struggle_stability_gap")
	if c == nil || c.Severity != SeverityHigh {
		t.Fatalf("gap 4 conflict=%+v want high", c)
	}

	candidate.LifeIntent.StruggleStabilityScale = 3
	c = conflictOfType(PredictConflicts(seeker, candidate), "struggle_stability_gap")
	if c == nil || c.Severity != SeverityMedium {
		t.Fatalf("gap 2 conflict=%+v want medium", c)
	}

	candidate.LifeIntent.StruggleStabilityScale = 2
	if c := conflictOfType(PredictConflicts(seeker, candidate), "struggle_stability_gap"); c != nil {
		t.Fatalf("gap 1 should not conflict: %+v", c)
	}
}

func TestPredictConflicts_SleepSchedule(t *testing.T) {
	seeker := tidyProfile("a")
	candidate := tidyProfile("b")
	seeker.SleepSchedule = "early"
	candidate.SleepSchedule = "late"

	c := conflictOfType(PredictConflicts(seeker, candidate), "sleep_schedule")
	if c == nil || c.Severity != SeverityMedium {
		t.Fatalf("sleep conflict=%+v want medium", c)
	}

	candidate.SleepSchedule = "flexible"
	if c := conflictOfType(PredictConflicts(seeker, candidate), "sleep_schedule"); c != nil {
		t.Fatalf("flexible should not conflict: %+v", c)
	}
}

func TestPredictConflicts_CleanlinessGap(t *testing.T) {
	seeker := tidyProfile("a")
	candidate := tidyProfile("b")

	seeker.CleanlinessLevel = 5
	candidate.CleanlinessLevel = 2
	c := conflictOfType(PredictConflicts(seeker, candidate), "cleanliness_gap")
	if c == nil || c.Severity != SeverityHigh {
		t.Fatalf("gap 3 conflict=%+v want high", c)
	}

	candidate.CleanlinessLevel = 3
	c = conflictOfType(PredictConflicts(seeker, candidate), "cleanliness_gap")
	if c == nil || c.Severity != SeverityMedium {
		t.Fatalf("gap 2 conflict=%+v want medium", c)
	}
}

func TestPredictConflicts_SmokingSeverityDependsOnExposure(t *testing.T) {
	seeker := tidyProfile("a")
	candidate := tidyProfile("b")

	// Non-smoking seeker exposed to a smoker: high.
	candidate.Smoking = true
	c := conflictOfType(PredictConflicts(seeker, candidate), "smoking")
	if c == nil || c.Severity != SeverityHigh {
		t.Fatalf("conflict=%+v want high for exposed seeker", c)
	}

	// Smoking seeker with a non-smoking candidate: medium.
	seeker.Smoking = true
	candidate.Smoking = false
	c = conflictOfType(PredictConflicts(seeker, candidate), "smoking")
	if c == nil || c.Severity != SeverityMedium {
		t.Fatalf("conflict=%+v want medium for smoking seeker", c)
	}
}

func TestPredictConflicts_NoiseGuestsClash(t *testing.T) {
	seeker := tidyProfile("a")
	candidate := tidyProfile("b")
	seeker.NoiseTolerance = "low"
	candidate.GuestsFrequency = "high"

	c := conflictOfType(PredictConflicts(seeker, candidate), "noise_guests_clash")
	if c == nil || c.Severity != SeverityHigh {
		t.Fatalf("conflict=%+v want high", c)
	}

	// Not symmetric: the rule keys on the seeker's tolerance.
	seeker.NoiseTolerance = "high"
	seeker.GuestsFrequency = "high"
	candidate.NoiseTolerance = "low"
	candidate.GuestsFrequency = "low"
	if c := conflictOfType(PredictConflicts(seeker, candidate), "noise_guests_clash"); c != nil {
		t.Fatalf("unexpected clash: %+v", c)
	}
}

func TestPredictConflicts_SocialEnergyAndDailyEnergy(t *testing.T) {
	seeker := tidyProfile("a")
	candidate := tidyProfile("b")
	seeker.IntrovertExtrovertScale = 1
	candidate.IntrovertExtrovertScale = 5
	seeker.LifeIntent.DailyEnergyLevel = "low"
	candidate.LifeIntent.DailyEnergyLevel = "high"

	conflicts := PredictConflicts(seeker, candidate)

	c := conflictOfType(conflicts, "social_energy")
	if c == nil || c.Severity != SeverityMedium {
		t.Fatalf("social energy conflict=%+v want medium", c)
	}
	c = conflictOfType(conflicts, "energy_mismatch")
	if c == nil || c.Severity != SeverityLow {
		t.Fatalf("energy mismatch conflict=%+v want low", c)
	}
}

func TestPredictConflicts_RulesAreIndependent(t *testing.T) {
	seeker := tidyProfile("a")
	candidate := tidyProfile("b")
	seeker.LifeIntent.LifeMode = "growth"
	candidate.LifeIntent.LifeMode = "chill"
	seeker.SleepSchedule = "early"
	candidate.SleepSchedule = "late"
	seeker.CleanlinessLevel = 5
	candidate.CleanlinessLevel = 1

	conflicts := PredictConflicts(seeker, candidate)
	for _, typ := range []string{"life_mode_clash", "sleep_schedule", "cleanliness_gap"} {
		if conflictOfType(conflicts, typ) == nil {
			t.Fatalf("missing %s in %+v", typ, conflicts)
		}
	}
}
