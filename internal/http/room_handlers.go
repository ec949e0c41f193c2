package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/roomradar/roommate-matching/internal/domain"
)

type RoomsListResponse struct {
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Total  int           `json:"total"`
	Items  []domain.Room `json:"items"`
}

func (s *Server) handleRoomsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	q := r.URL.Query()

	maxRent := 0
	if v := q.Get("max_rent"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			maxRent = parsed
		}
	}

	items, total, err := s.Store.ListRoomsFiltered(limit, offset, q.Get("city"), maxRent, q.Get("vacancy_type"), q.Get("sort"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if items == nil {
		items = []domain.Room{}
	}

	writeJSON(w, http.StatusOK, RoomsListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handleRoomsCreate(w http.ResponseWriter, r *http.Request) {
	var room domain.Room
	if err := decodeJSON(r, &room); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// minimal validation
	if room.Title == "" || room.Location.City == "" {
		writeError(w, http.StatusBadRequest, "title and location are required")
		return
	}
	if room.Rent <= 0 {
		writeError(w, http.StatusBadRequest, "rent must be > 0")
		return
	}
	if room.VacancyType != "single" && room.VacancyType != "shared" {
		writeError(w, http.StatusBadRequest, "vacancy_type must be single or shared")
		return
	}

	room.ID = ""
	created, err := s.Store.CreateRoom(room)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleRoomsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	room, ok, err := s.Store.GetRoom(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleRoomsUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var room domain.Room
	if err := decodeJSON(r, &room); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	room.ID = id

	ok, err := s.Store.UpdateRoom(room)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleRoomsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ok, err := s.Store.DeleteRoom(id)
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
