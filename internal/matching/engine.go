package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/roomradar/roommate-matching/internal/domain"
)

// Breakdown keys. Hobby compatibility is informational: it is reported in
// the breakdown but folds into the social dimension rather than carrying
// its own weight.
const (
	DimIntentAlignment = "intent_alignment"
	DimLifestyle       = "lifestyle_compatibility"
	DimSocial          = "social_compatibility"
	DimHobbies         = "hobby_compatibility"
	DimBudgetOverlap   = "budget_overlap"
	DimLocationMatch   = "location_match"
	DimMoveInTiming    = "move_in_timing"
)

// Engine scores pairwise roommate compatibility. It holds immutable
// configuration only, so one instance is safe to share across requests.
type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

// ComputeMatchScore evaluates every dimension for a seeker/candidate pair
// and aggregates the weighted sub-scores into one 0..100 integer.
func (e *Engine) ComputeMatchScore(seeker, candidate domain.Profile) (int, map[string]domain.DimensionScore) {
	breakdown := make(map[string]domain.DimensionScore, 7)
	var totalScore, totalWeight float64

	add := func(key string, score int, details map[string]any, weight float64) {
		breakdown[key] = domain.DimensionScore{Score: score, Max: 100, Details: details}
		if weight > 0 {
			totalScore += float64(score) / 100 * weight
			totalWeight += weight
		}
	}

	intent, intentDetails := scoreIntentAlignment(seeker, candidate)
	add(DimIntentAlignment, intent, intentDetails, e.weights.IntentAlignment)

	lifestyle, lifestyleDetails := scoreLifestyle(seeker, candidate)
	add(DimLifestyle, lifestyle, lifestyleDetails, e.weights.LifestyleCompatibility)

	social, socialDetails := scoreSocial(seeker, candidate)
	add(DimSocial, social, socialDetails, e.weights.SocialCompatibility)

	// Informational only: contributes through the social dimension.
	add(DimHobbies, scoreHobbies(seeker.Hobbies, candidate.Hobbies), nil, 0)

	add(DimBudgetOverlap, scoreBudgetOverlap(seeker.BudgetRange, candidate.BudgetRange), nil, e.weights.BudgetOverlap)
	add(DimLocationMatch, scoreLocation(seeker.Location, candidate.Location), nil, e.weights.LocationMatch)
	add(DimMoveInTiming, scoreMoveInTiming(seeker, candidate), nil, e.weights.MoveInTiming)

	if totalWeight <= 0 {
		return 50, breakdown
	}
	return int(math.Round(totalScore / totalWeight * 100)), breakdown
}

// scoreIntentAlignment rewards a shared life mode, closeness on the
// struggle-stability scale and overlapping life goals.
func scoreIntentAlignment(seeker, candidate domain.Profile) (int, map[string]any) {
	seekerMode := lifeModeOrDefault(seeker.LifeIntent.LifeMode)
	candidateMode := lifeModeOrDefault(candidate.LifeIntent.LifeMode)

	score := 0
	switch {
	case seekerMode == candidateMode:
		score += 40
	case seekerMode == "balanced" || candidateMode == "balanced":
		score += 25
	default:
		score += 5
	}

	ssGap := absInt(scaleOrDefault(seeker.LifeIntent.StruggleStabilityScale) -
		scaleOrDefault(candidate.LifeIntent.StruggleStabilityScale))
	score += maxInt(0, 30-ssGap*8)

	shared := sharedGoals(seeker.LifeIntent.LifeGoals, candidate.LifeIntent.LifeGoals)
	score += minInt(len(shared)*10, 30)

	details := map[string]any{
		"seeker_mode":    seekerMode,
		"candidate_mode": candidateMode,
		"struggle_gap":   ssGap,
		"shared_goals":   shared,
	}
	return clampScore(score), details
}

func sharedGoals(seeker, candidate []string) []string {
	have := make(map[string]struct{}, len(candidate))
	for _, g := range candidate {
		have[g] = struct{}{}
	}
	shared := []string{}
	for _, g := range seeker {
		if _, ok := have[g]; ok {
			shared = append(shared, g)
		}
	}
	return shared
}

// scoreLifestyle combines daily-habit closeness: cleanliness, sleep,
// smoking, drinking, noise tolerance and guest frequency.
func scoreLifestyle(seeker, candidate domain.Profile) (int, map[string]any) {
	score := 0

	cleanGap := absInt(scaleOrDefault(seeker.CleanlinessLevel) - scaleOrDefault(candidate.CleanlinessLevel))
	score += maxInt(0, 25-cleanGap*7)

	seekerSleep := sleepOrDefault(seeker.SleepSchedule)
	candidateSleep := sleepOrDefault(candidate.SleepSchedule)
	switch {
	case seekerSleep == candidateSleep:
		score += 20
	case seekerSleep == "flexible" || candidateSleep == "flexible":
		score += 12
	default:
		score += 2
	}

	if seeker.Smoking == candidate.Smoking {
		score += 15
	} else {
		score -= 5
	}

	if seeker.Drinking == candidate.Drinking {
		score += 10
	} else {
		score -= 2
	}

	noiseGap := absInt(ordinalLevel(seeker.NoiseTolerance) - ordinalLevel(candidate.NoiseTolerance))
	score += maxInt(0, 15-noiseGap*7)

	guestGap := absInt(ordinalLevel(seeker.GuestsFrequency) - ordinalLevel(candidate.GuestsFrequency))
	score += maxInt(0, 15-guestGap*7)

	details := map[string]any{
		"clean_gap":   cleanGap,
		"sleep_match": seekerSleep == candidateSleep,
		"noise_gap":   noiseGap,
		"guest_gap":   guestGap,
	}
	return clampScore(score), details
}

// scoreSocial measures social-energy distance across the introvert scale,
// guest frequency and noise tolerance, then adds a weekend-style bonus.
func scoreSocial(seeker, candidate domain.Profile) (int, map[string]any) {
	seekerSocial := scaleOrDefault(seeker.IntrovertExtrovertScale) +
		ordinalLevel(seeker.GuestsFrequency) + ordinalLevel(seeker.NoiseTolerance)
	candidateSocial := scaleOrDefault(candidate.IntrovertExtrovertScale) +
		ordinalLevel(candidate.GuestsFrequency) + ordinalLevel(candidate.NoiseTolerance)

	// Max possible distance is (5+3+3) - (1+1+1) = 8.
	gap := absInt(seekerSocial - candidateSocial)
	social := maxInt(0, int(math.Round(100-float64(gap)/8*100)))

	seekerWknd := weekendOrDefault(seeker.WeekendStyle)
	candidateWknd := weekendOrDefault(candidate.WeekendStyle)
	bonus := 0
	switch {
	case seekerWknd == candidateWknd:
		bonus = 20
	case seekerWknd == "mixed" || candidateWknd == "mixed":
		bonus = 10
	}

	combined := minInt(100, int(math.Round(float64(social)*0.8))+bonus)

	ieGap := absInt(scaleOrDefault(seeker.IntrovertExtrovertScale) -
		scaleOrDefault(candidate.IntrovertExtrovertScale))
	details := map[string]any{
		"social_score":  social,
		"weekend_bonus": bonus,
		"ie_gap":        ieGap,
	}
	return combined, details
}

// scoreHobbies gives 10 points per exact hobby match and 5 per category
// match, normalized against the seeker's hobby count. Neutral 50 when
// either side lists nothing.
func scoreHobbies(seekerHobbies, candidateHobbies []string) int {
	if len(seekerHobbies) == 0 || len(candidateHobbies) == 0 {
		return 50
	}

	candidateSet := make(map[string]struct{}, len(candidateHobbies))
	candidateCategories := make(map[string]struct{}, len(candidateHobbies))
	for _, h := range candidateHobbies {
		candidateSet[strings.ToLower(strings.TrimSpace(h))] = struct{}{}
		candidateCategories[hobbyCategoryOf(h)] = struct{}{}
	}

	points := 0
	maxPoints := len(seekerHobbies) * 10
	for _, h := range seekerHobbies {
		if _, ok := candidateSet[strings.ToLower(strings.TrimSpace(h))]; ok {
			points += 10
			continue
		}
		category := hobbyCategoryOf(h)
		if category == categoryOther {
			continue
		}
		if _, ok := candidateCategories[category]; ok {
			points += 5
		}
	}

	return minInt(100, int(math.Round(float64(points)/float64(maxPoints)*100)))
}

// scoreBudgetOverlap scores the overlap of the two ranges relative to the
// width of the seeker's range. Identical ranges score 100; disjoint
// ranges score 0.
func scoreBudgetOverlap(seeker, candidate domain.BudgetRange) int {
	sMin, sMax := budgetBounds(seeker)
	cMin, cMax := budgetBounds(candidate)

	overlapStart := maxInt(sMin, cMin)
	overlapEnd := minInt(sMax, cMax)
	if overlapEnd < overlapStart {
		return 0
	}

	seekerRange := sMax - sMin
	if seekerRange == 0 {
		seekerRange = 1
	}
	overlap := overlapEnd - overlapStart
	return minInt(100, int(math.Round(float64(overlap)/float64(seekerRange)*100)))
}

func scoreLocation(seeker, candidate domain.Location) int {
	switch {
	case equalFold(seeker.City, candidate.City):
		return 100
	case equalFold(seeker.State, candidate.State):
		return 60
	default:
		return 20
	}
}

// scoreMoveInTiming scores by absolute day difference between move-in
// dates, neutral 50 when either date is absent.
func scoreMoveInTiming(seeker, candidate domain.Profile) int {
	if seeker.MoveInDate == nil || candidate.MoveInDate == nil {
		return 50
	}
	diffDays := math.Abs(seeker.MoveInDate.Sub(*candidate.MoveInDate).Hours()) / 24

	switch {
	case diffDays <= 14:
		return 100
	case diffDays <= 30:
		return 80
	case diffDays <= 60:
		return 60
	case diffDays <= 90:
		return 40
	default:
		return 20
	}
}

// MatchTier maps a final score onto its qualitative band.
func MatchTier(score int) domain.Tier {
	switch {
	case score >= perfectMatchMin:
		return domain.Tier{Label: "Perfect Match", Description: "This is your ideal roommate", Color: "green"}
	case score >= greatMatchMin:
		return domain.Tier{Label: "Great Match", Description: "Strong compatibility", Color: "emerald"}
	case score >= goodMatchMin:
		return domain.Tier{Label: "Good Match", Description: "Works with some adjustments", Color: "yellow"}
	case score >= fairMatchMin:
		return domain.Tier{Label: "Fair Match", Description: "Significant differences", Color: "orange"}
	default:
		return domain.Tier{Label: "Poor Match", Description: "Not recommended", Color: "red"}
	}
}

// topReasons picks up to three salient statements, positives before
// negatives.
func topReasons(seeker, candidate domain.Profile, breakdown map[string]domain.DimensionScore) []domain.Reason {
	var positives, negatives []domain.Reason

	if breakdown[DimIntentAlignment].Score >= 70 {
		mode := lifeModeOrDefault(candidate.LifeIntent.LifeMode)
		positives = append(positives, domain.Reason{Type: "positive",
			Text: `Both in "` + mode + `" mode — aligned life phase.`})
	}
	if breakdown[DimLifestyle].Score >= 70 {
		positives = append(positives, domain.Reason{Type: "positive",
			Text: "Highly compatible daily lifestyle habits."})
	}
	if breakdown[DimSocial].Score >= 70 {
		positives = append(positives, domain.Reason{Type: "positive",
			Text: "Matching social energy — similar preferences for guests and noise."})
	}
	if breakdown[DimHobbies].Score >= 60 {
		if shared := sharedHobbies(seeker.Hobbies, candidate.Hobbies); len(shared) > 0 {
			if len(shared) > 3 {
				shared = shared[:3]
			}
			positives = append(positives, domain.Reason{Type: "positive",
				Text: "Shared hobbies: " + strings.Join(shared, ", ") + "."})
		} else {
			positives = append(positives, domain.Reason{Type: "positive",
				Text: "Similar hobby interests and activity preferences."})
		}
	}
	if breakdown[DimBudgetOverlap].Score >= 80 {
		positives = append(positives, domain.Reason{Type: "positive",
			Text: "Excellent budget alignment."})
	}
	if breakdown[DimLocationMatch].Score == 100 {
		positives = append(positives, domain.Reason{Type: "positive",
			Text: "Both in " + seeker.Location.City + " — same city!"})
	}

	if breakdown[DimIntentAlignment].Score < 40 {
		negatives = append(negatives, domain.Reason{Type: "negative",
			Text: "Different life modes may cause friction."})
	}
	if breakdown[DimLifestyle].Score < 40 {
		negatives = append(negatives, domain.Reason{Type: "negative",
			Text: "Notable lifestyle differences to work through."})
	}
	if breakdown[DimBudgetOverlap].Score < 30 {
		negatives = append(negatives, domain.Reason{Type: "negative",
			Text: "Budget ranges have limited overlap."})
	}

	reasons := append(positives, negatives...)
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return reasons
}

// FindMatches runs the full pipeline for one seeker over a candidate pool:
// self-exclusion, dealbreaker filtering, scoring, conflict prediction,
// explanation generation and room linking, sorted by final score. The sort
// is stable so equal scores keep their input order.
func (e *Engine) FindMatches(seeker domain.Profile, candidates []domain.Profile, rooms []domain.Room) []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.ID == seeker.ID {
			continue
		}
		if IsDealbreakerViolation(seeker, candidate).Violated {
			continue
		}

		finalScore, breakdown := e.ComputeMatchScore(seeker, candidate)
		conflicts := PredictConflicts(seeker, candidate)

		results = append(results, domain.MatchResult{
			Candidate:    summarizeCandidate(candidate),
			MatchScore:   finalScore,
			Tier:         MatchTier(finalScore),
			TopReasons:   topReasons(seeker, candidate, breakdown),
			Breakdown:    breakdown,
			Conflicts:    conflicts,
			Explanations: GenerateExplanations(seeker, candidate, breakdown, conflicts),
			LinkedRooms:  linkedRooms(candidate.ID, rooms),
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].MatchScore > results[j].MatchScore })
	return results
}

func summarizeCandidate(p domain.Profile) domain.CandidateSummary {
	return domain.CandidateSummary{
		ID:         p.ID,
		Name:       p.Name,
		Age:        p.Age,
		Gender:     p.Gender,
		Occupation: p.Occupation,
		Location:   p.Location,
		LifeIntent: p.LifeIntent,
		Hobbies:    p.Hobbies,
		Avatar:     p.Avatar,
	}
}

func summarizeRoom(r domain.Room) domain.RoomSummary {
	return domain.RoomSummary{
		ID:          r.ID,
		Title:       r.Title,
		Rent:        r.Rent,
		Location:    r.Location,
		VacancyType: r.VacancyType,
		Amenities:   r.Amenities,
	}
}

// linkedRooms returns rooms whose current-roommate list contains the
// candidate.
func linkedRooms(candidateID string, rooms []domain.Room) []domain.RoomSummary {
	linked := []domain.RoomSummary{}
	for _, r := range rooms {
		for _, id := range r.CurrentRoommates {
			if id == candidateID {
				linked = append(linked, summarizeRoom(r))
				break
			}
		}
	}
	return linked
}
