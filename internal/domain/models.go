package domain

import "time"

// Profile describes one person looking for (or living with) roommates.
// The same shape is used for the seeker and for candidates; Dealbreakers
// is only consulted on the seeker side.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`     // male, female, non-binary, other
	Occupation string `json:"occupation"` // student, working, remote
	Avatar     string `json:"avatar,omitempty"`

	BudgetRange BudgetRange `json:"budget_range"`
	Location    Location    `json:"location"`
	MoveInDate  *time.Time  `json:"move_in_date,omitempty"`

	// Lifestyle
	CleanlinessLevel int    `json:"cleanliness_level"` // 1..5
	SleepSchedule    string `json:"sleep_schedule"`    // early, late, flexible
	Smoking          bool   `json:"smoking"`
	Drinking         bool   `json:"drinking"`
	GuestsFrequency  string `json:"guests_frequency"` // low, medium, high
	NoiseTolerance   string `json:"noise_tolerance"`  // low, medium, high

	// Personality
	IntrovertExtrovertScale int    `json:"introvert_extrovert_scale"` // 1..5
	WeekendStyle            string `json:"weekend_style"`             // homebody, outings, mixed

	Hobbies []string `json:"hobbies,omitempty"`

	LifeIntent       LifeIntent       `json:"life_intent"`
	CulturalOpenness CulturalOpenness `json:"cultural_openness"`

	Dealbreakers *Dealbreakers `json:"dealbreakers,omitempty"`

	SavedMatches []string `json:"saved_matches,omitempty"`
}

type BudgetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Location struct {
	City  string  `json:"city"`
	State string  `json:"state"`
	Lat   float64 `json:"lat,omitempty"`
	Lng   float64 `json:"lng,omitempty"`
}

type LifeIntent struct {
	LifeMode               string   `json:"life_mode"` // growth, chill, balanced
	LifeGoals              []string `json:"life_goals,omitempty"`
	DailyEnergyLevel       string   `json:"daily_energy_level"`       // low, medium, high
	StruggleStabilityScale int      `json:"struggle_stability_scale"` // 1..5
}

type CulturalOpenness struct {
	CulturalPreference  string `json:"cultural_preference"`   // comfort_zone, mixed, explorer
	SameStatePreference string `json:"same_state_preference"` // same_state_only, open_to_all
}

// Dealbreakers are hard constraints. A candidate violating any of them is
// excluded from results before scoring.
type Dealbreakers struct {
	NoSmokers        bool   `json:"no_smokers"`
	NoDrinkers       bool   `json:"no_drinkers"`
	GenderPreference string `json:"gender_preference,omitempty"` // any, same_gender, male, female
	MaxBudget        int    `json:"max_budget,omitempty"`
	SameCity         bool   `json:"same_city"`
}

// Room is read-only context: it annotates matches with the places a
// candidate currently lives in, it is never scored by the engine.
type Room struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Rent             int        `json:"rent"`
	Location         Location   `json:"location"`
	Amenities        []string   `json:"amenities,omitempty"`
	Images           []string   `json:"images,omitempty"`
	VacancyType      string     `json:"vacancy_type"` // single, shared
	AvailableFrom    *time.Time `json:"available_from,omitempty"`
	CurrentRoommates []string   `json:"current_roommates,omitempty"`
	PostedBy         string     `json:"posted_by,omitempty"`
	Description      string     `json:"description,omitempty"`
}

// DimensionScore is one entry of the per-dimension breakdown.
type DimensionScore struct {
	Score   int            `json:"score"`
	Max     int            `json:"max"`
	Details map[string]any `json:"details,omitempty"`
}

// Tier is a qualitative label derived from the final score band.
type Tier struct {
	Label       string `json:"tier"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type Reason struct {
	Type string `json:"type"` // positive, negative
	Text string `json:"text"`
}

type Conflict struct {
	Type     string `json:"type"`
	Severity string `json:"severity"` // low, medium, high
	Message  string `json:"message"`
}

type Explanation struct {
	Category string `json:"category"`
	Type     string `json:"type"` // positive, neutral, negative
	Text     string `json:"text"`
}

// CandidateSummary is the public slice of a candidate profile returned
// inside a MatchResult.
type CandidateSummary struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Gender     string     `json:"gender"`
	Occupation string     `json:"occupation"`
	Location   Location   `json:"location"`
	LifeIntent LifeIntent `json:"life_intent"`
	Hobbies    []string   `json:"hobbies,omitempty"`
	Avatar     string     `json:"avatar,omitempty"`
}

type RoomSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Rent        int      `json:"rent"`
	Location    Location `json:"location"`
	VacancyType string   `json:"vacancy_type"`
	Amenities   []string `json:"amenities,omitempty"`
}

// MatchResult is the full scored outcome for one candidate. It is
// assembled per request and never persisted.
type MatchResult struct {
	Candidate    CandidateSummary          `json:"candidate"`
	MatchScore   int                       `json:"match_score"`
	Tier         Tier                      `json:"tier"`
	TopReasons   []Reason                  `json:"top_reasons"`
	Breakdown    map[string]DimensionScore `json:"breakdown"`
	Conflicts    []Conflict                `json:"conflicts"`
	Explanations []Explanation             `json:"explanations"`
	LinkedRooms  []RoomSummary             `json:"linked_rooms"`
}

// RoomRecommendation scores a room against a seeker by location, rent and
// compatibility with its current roommates.
type RoomRecommendation struct {
	Room  RoomSummary `json:"room"`
	Score int         `json:"score"`
}

// SuggestedProfile is a compact "users like you also matched" entry.
type SuggestedProfile struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Occupation string   `json:"occupation"`
	Location   Location `json:"location"`
	MatchScore int      `json:"match_score"`
}
