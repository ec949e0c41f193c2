package matching

import (
	"math"
	"sort"

	"github.com/roomradar/roommate-matching/internal/domain"
)

// RecommendRooms ranks rooms for a seeker by location, rent fit against
// the seeker's budget, and average compatibility with the room's current
// roommates. profilesByID resolves roommate ids; unknown ids are skipped.
func (e *Engine) RecommendRooms(seeker domain.Profile, rooms []domain.Room, profilesByID map[string]domain.Profile, limit int) []domain.RoomRecommendation {
	if limit <= 0 {
		limit = 3
	}

	out := make([]domain.RoomRecommendation, 0, len(rooms))
	for _, room := range rooms {
		score := 0.0

		switch {
		case equalFold(room.Location.City, seeker.Location.City):
			score += 40
		case equalFold(room.Location.State, seeker.Location.State):
			score += 20
		}

		sMin, sMax := budgetBounds(seeker.BudgetRange)
		switch {
		case room.Rent >= sMin && room.Rent <= sMax:
			score += 40
		case float64(room.Rent) <= float64(sMax)*1.1:
			score += 20
		}

		var roommateTotal, roommateCount int
		for _, id := range room.CurrentRoommates {
			rm, ok := profilesByID[id]
			if !ok || rm.ID == seeker.ID {
				continue
			}
			final, _ := e.ComputeMatchScore(seeker, rm)
			roommateTotal += final
			roommateCount++
		}
		if roommateCount > 0 {
			avg := float64(roommateTotal) / float64(roommateCount)
			score += avg / 100 * 20
		}

		out = append(out, domain.RoomRecommendation{
			Room:  summarizeRoom(room),
			Score: int(math.Round(score)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SuggestProfiles returns the seeker's top matches as compact summaries
// for the "users like you also matched with" panel.
func (e *Engine) SuggestProfiles(seeker domain.Profile, candidates []domain.Profile, limit int) []domain.SuggestedProfile {
	if limit <= 0 {
		limit = 3
	}

	type scored struct {
		profile domain.Profile
		score   int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == seeker.ID {
			continue
		}
		final, _ := e.ComputeMatchScore(seeker, c)
		ranked = append(ranked, scored{profile: c, score: final})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]domain.SuggestedProfile, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, domain.SuggestedProfile{
			ID:         r.profile.ID,
			Name:       r.profile.Name,
			Age:        r.profile.Age,
			Occupation: r.profile.Occupation,
			Location:   r.profile.Location,
			MatchScore: r.score,
		})
	}
	return out
}
