package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/roomradar/roommate-matching/internal/matching"
	"github.com/roomradar/roommate-matching/internal/metrics"
	"github.com/roomradar/roommate-matching/internal/storage"
)

type Server struct {
	Engine *matching.Engine
	Store  *storage.SQLiteStore
}

func NewServer(engine *matching.Engine, store *storage.SQLiteStore) *Server {
	return &Server{Engine: engine, Store: store}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Post("/match", s.handleMatch)
	r.Post("/recommendations/{id}", s.handleRecommendations)

	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", s.handleProfilesList)
		r.Post("/", s.handleProfilesCreate)
		r.Get("/{id}", s.handleProfilesGet)
		r.Put("/{id}", s.handleProfilesUpdate)
		r.Delete("/{id}", s.handleProfilesDelete)

		r.Get("/{id}/saved-matches", s.handleSavedMatchesList)
		r.Post("/{id}/saved-matches", s.handleSavedMatchesAdd)
		r.Delete("/{id}/saved-matches/{matchId}", s.handleSavedMatchesRemove)
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", s.handleRoomsList)
		r.Post("/", s.handleRoomsCreate)
		r.Get("/{id}", s.handleRoomsGet)
		r.Put("/{id}", s.handleRoomsUpdate)
		r.Delete("/{id}", s.handleRoomsDelete)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}
