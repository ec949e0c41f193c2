package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/roomradar/roommate-matching/internal/domain"
	"github.com/roomradar/roommate-matching/internal/metrics"
)

type MatchRequest struct {
	SeekerID string `json:"seeker_id"`
	Limit    int    `json:"limit"`
}

type MatchResponse struct {
	Seeker       SeekerSummary        `json:"seeker"`
	TotalMatches int                  `json:"total_matches"`
	Matches      []domain.MatchResult `json:"matches"`
}

type SeekerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.SeekerID == "" {
		writeError(w, http.StatusBadRequest, "seeker_id is required")
		return
	}

	seeker, ok, err := s.Store.GetProfile(req.SeekerID)
	if err != nil {
		metrics.MatchRunsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		metrics.MatchRunsTotal.WithLabelValues("not_found").Inc()
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	candidates, err := s.Store.AllProfiles()
	if err != nil {
		metrics.MatchRunsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	rooms, err := s.Store.AllRooms()
	if err != nil {
		metrics.MatchRunsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	start := time.Now()
	matches := s.Engine.FindMatches(seeker, candidates, rooms)
	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	metrics.CandidatesEvaluated.Add(float64(len(candidates)))
	metrics.MatchRunsTotal.WithLabelValues("ok").Inc()

	total := len(matches)
	if req.Limit > 0 && len(matches) > req.Limit {
		matches = matches[:req.Limit]
	}

	writeJSON(w, http.StatusOK, MatchResponse{
		Seeker:       SeekerSummary{ID: seeker.ID, Name: seeker.Name},
		TotalMatches: total,
		Matches:      matches,
	})
}

type RecommendationsResponse struct {
	RecommendedRooms        []domain.RoomRecommendation `json:"recommended_rooms"`
	UsersLikeYouAlsoMatched []domain.SuggestedProfile   `json:"users_like_you_also_matched"`
}

// handleRecommendations suggests rooms that fit the seeker's location and
// budget plus the profiles they are most compatible with.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	seeker, ok, err := s.Store.GetProfile(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	profiles, err := s.Store.AllProfiles()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	rooms, err := s.Store.AllRooms()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	byID := make(map[string]domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	writeJSON(w, http.StatusOK, RecommendationsResponse{
		RecommendedRooms:        s.Engine.RecommendRooms(seeker, rooms, byID, 3),
		UsersLikeYouAlsoMatched: s.Engine.SuggestProfiles(seeker, profiles, 3),
	})
}
