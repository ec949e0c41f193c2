package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roomradar/roommate-matching/internal/domain"
)

type ProfilesListResponse struct {
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Total  int              `json:"total"`
	Items  []domain.Profile `json:"items"`
}

func (s *Server) handleProfilesList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)

	items, total, err := s.Store.ListProfiles(limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if items == nil {
		items = []domain.Profile{}
	}

	writeJSON(w, http.StatusOK, ProfilesListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handleProfilesCreate(w http.ResponseWriter, r *http.Request) {
	var p domain.Profile
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// minimal validation
	if p.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if p.Age <= 0 {
		writeError(w, http.StatusBadRequest, "age must be > 0")
		return
	}
	if p.Location.City == "" || p.Location.State == "" {
		writeError(w, http.StatusBadRequest, "location city and state are required")
		return
	}

	p.ID = "" // ids are assigned by the store
	created, err := s.Store.CreateProfile(p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleProfilesGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok, err := s.Store.GetProfile(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProfilesUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var p domain.Profile
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	p.ID = id

	ok, err := s.Store.UpdateProfile(p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProfilesDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ok, err := s.Store.DeleteProfile(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---- saved matches ----

type SaveMatchRequest struct {
	MatchID string `json:"match_id"`
}

type SavedMatchesResponse struct {
	SavedMatches []string `json:"saved_matches"`
}

func (s *Server) handleSavedMatchesAdd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SaveMatchRequest
	if err := decodeJSON(r, &req); err != nil || req.MatchID == "" {
		writeError(w, http.StatusBadRequest, "match_id is required")
		return
	}

	// The match must exist so stale ids never accumulate.
	_, ok, err := s.Store.GetProfile(req.MatchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}

	saved, ok, err := s.Store.SaveMatch(id, req.MatchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, SavedMatchesResponse{SavedMatches: saved})
}

func (s *Server) handleSavedMatchesRemove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	matchID := chi.URLParam(r, "matchId")

	saved, ok, err := s.Store.UnsaveMatch(id, matchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, SavedMatchesResponse{SavedMatches: saved})
}

func (s *Server) handleSavedMatchesList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok, err := s.Store.GetProfile(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	out := []domain.Profile{}
	for _, matchID := range p.SavedMatches {
		if m, ok, err := s.Store.GetProfile(matchID); err == nil && ok {
			out = append(out, m)
		}
	}
	writeJSON(w, http.StatusOK, out)
}
