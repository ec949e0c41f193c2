package matching

import (
	"encoding/json"
	"fmt"
	"os"
)

// Weights defines the relative weight of each scored dimension. Intent and
// lifestyle dominate, budget and location are secondary, timing is minor.
type Weights struct {
	IntentAlignment        float64 `json:"intent_alignment"`
	LifestyleCompatibility float64 `json:"lifestyle_compatibility"`
	SocialCompatibility    float64 `json:"social_compatibility"`
	BudgetOverlap          float64 `json:"budget_overlap"`
	LocationMatch          float64 `json:"location_match"`
	MoveInTiming           float64 `json:"move_in_timing"`
}

// DefaultWeights returns the canonical weighting scheme.
func DefaultWeights() Weights {
	return Weights{
		IntentAlignment:        25,
		LifestyleCompatibility: 25,
		SocialCompatibility:    20,
		BudgetOverlap:          15,
		LocationMatch:          10,
		MoveInTiming:           5,
	}
}

// Total returns the sum of all dimension weights.
func (w Weights) Total() float64 {
	return w.IntentAlignment + w.LifestyleCompatibility + w.SocialCompatibility +
		w.BudgetOverlap + w.LocationMatch + w.MoveInTiming
}

// LoadWeightsFromFile loads weights from a JSON file, falling back to
// defaults on read errors.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}

// Score bands for the tier table, evaluated high to low.
const (
	perfectMatchMin = 85
	greatMatchMin   = 70
	goodMatchMin    = 50
	fairMatchMin    = 30
)

// Profile diff thresholds used by the conflict predictor.
const (
	struggleGapHigh   = 3
	struggleGapMedium = 2
	cleanGapHigh      = 3
	cleanGapMedium    = 2
	socialEnergyGap   = 3
	energyLevelGap    = 2
)
