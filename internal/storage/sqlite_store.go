package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/roomradar/roommate-matching/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createProfiles = `
CREATE TABLE IF NOT EXISTS profiles (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  age INTEGER NOT NULL,
  gender TEXT NOT NULL,
  occupation TEXT NOT NULL,
  avatar TEXT NOT NULL DEFAULT '',
  budget_min INTEGER NOT NULL,
  budget_max INTEGER NOT NULL,
  city TEXT NOT NULL,
  state TEXT NOT NULL,
  lat REAL NOT NULL DEFAULT 0,
  lng REAL NOT NULL DEFAULT 0,
  move_in_date TEXT,
  cleanliness_level INTEGER NOT NULL DEFAULT 3,
  sleep_schedule TEXT NOT NULL DEFAULT 'flexible',
  smoking INTEGER NOT NULL DEFAULT 0,
  drinking INTEGER NOT NULL DEFAULT 0,
  guests_frequency TEXT NOT NULL DEFAULT 'medium',
  noise_tolerance TEXT NOT NULL DEFAULT 'medium',
  introvert_extrovert INTEGER NOT NULL DEFAULT 3,
  weekend_style TEXT NOT NULL DEFAULT 'mixed',
  hobbies_json TEXT NOT NULL DEFAULT '[]',
  life_intent_json TEXT NOT NULL DEFAULT '{}',
  cultural_json TEXT NOT NULL DEFAULT '{}',
  dealbreakers_json TEXT,
  saved_matches_json TEXT NOT NULL DEFAULT '[]'
);
`
	const createRooms = `
CREATE TABLE IF NOT EXISTS rooms (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  rent INTEGER NOT NULL,
  city TEXT NOT NULL,
  state TEXT NOT NULL,
  lat REAL NOT NULL DEFAULT 0,
  lng REAL NOT NULL DEFAULT 0,
  amenities_json TEXT NOT NULL DEFAULT '[]',
  images_json TEXT NOT NULL DEFAULT '[]',
  vacancy_type TEXT NOT NULL,
  available_from TEXT,
  roommates_json TEXT NOT NULL DEFAULT '[]',
  posted_by TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT ''
);
`
	if _, err := s.db.Exec(createProfiles); err != nil {
		return err
	}
	if _, err := s.db.Exec(createRooms); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_profiles_city ON profiles(city);`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_budget ON profiles(budget_min, budget_max);`,
		`CREATE INDEX IF NOT EXISTS idx_rooms_city ON rooms(city);`,
		`CREATE INDEX IF NOT EXISTS idx_rooms_rent ON rooms(rent);`,
	}
	for _, idx := range indexes {
		if _, err := s.db.Exec(idx); err != nil {
			return err
		}
	}
	return nil
}

// ---- profiles ----

const profileColumns = `id, name, age, gender, occupation, avatar, budget_min, budget_max,
city, state, lat, lng, move_in_date, cleanliness_level, sleep_schedule, smoking, drinking,
guests_frequency, noise_tolerance, introvert_extrovert, weekend_style,
hobbies_json, life_intent_json, cultural_json, dealbreakers_json, saved_matches_json`

func profileArgs(p domain.Profile) []any {
	hobbies, _ := json.Marshal(p.Hobbies)
	intent, _ := json.Marshal(p.LifeIntent)
	cultural, _ := json.Marshal(p.CulturalOpenness)
	saved, _ := json.Marshal(p.SavedMatches)

	var dealbreakers any
	if p.Dealbreakers != nil {
		b, _ := json.Marshal(p.Dealbreakers)
		dealbreakers = string(b)
	}

	var moveIn any
	if p.MoveInDate != nil {
		moveIn = p.MoveInDate.Format(time.RFC3339)
	}

	return []any{
		p.ID, p.Name, p.Age, p.Gender, p.Occupation, p.Avatar,
		p.BudgetRange.Min, p.BudgetRange.Max,
		p.Location.City, p.Location.State, p.Location.Lat, p.Location.Lng,
		moveIn, p.CleanlinessLevel, p.SleepSchedule, p.Smoking, p.Drinking,
		p.GuestsFrequency, p.NoiseTolerance, p.IntrovertExtrovertScale, p.WeekendStyle,
		string(hobbies), string(intent), string(cultural), dealbreakers, string(saved),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (domain.Profile, error) {
	var p domain.Profile
	var moveIn, dealbreakers sql.NullString
	var hobbies, intent, cultural, saved string

	err := row.Scan(
		&p.ID, &p.Name, &p.Age, &p.Gender, &p.Occupation, &p.Avatar,
		&p.BudgetRange.Min, &p.BudgetRange.Max,
		&p.Location.City, &p.Location.State, &p.Location.Lat, &p.Location.Lng,
		&moveIn, &p.CleanlinessLevel, &p.SleepSchedule, &p.Smoking, &p.Drinking,
		&p.GuestsFrequency, &p.NoiseTolerance, &p.IntrovertExtrovertScale, &p.WeekendStyle,
		&hobbies, &intent, &cultural, &dealbreakers, &saved,
	)
	if err != nil {
		return domain.Profile{}, err
	}

	if moveIn.Valid {
		if t, err := time.Parse(time.RFC3339, moveIn.String); err == nil {
			p.MoveInDate = &t
		}
	}
	_ = json.Unmarshal([]byte(hobbies), &p.Hobbies)
	_ = json.Unmarshal([]byte(intent), &p.LifeIntent)
	_ = json.Unmarshal([]byte(cultural), &p.CulturalOpenness)
	_ = json.Unmarshal([]byte(saved), &p.SavedMatches)
	if dealbreakers.Valid {
		var db domain.Dealbreakers
		if json.Unmarshal([]byte(dealbreakers.String), &db) == nil {
			p.Dealbreakers = &db
		}
	}
	return p, nil
}

func (s *SQLiteStore) CountProfiles() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&n)
	return n, err
}

// UpsertProfiles inserts the seed dataset without duplicating by id.
func (s *SQLiteStore) UpsertProfiles(items []domain.Profile) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO profiles (` + profileColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range items {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if _, err := stmt.Exec(profileArgs(p)...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) CreateProfile(p domain.Profile) (domain.Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`INSERT INTO profiles (`+profileColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		profileArgs(p)...)
	return p, err
}

func (s *SQLiteStore) GetProfile(id string) (domain.Profile, bool, error) {
	row := s.db.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, err
	}
	return p, true, nil
}

// UpdateProfile replaces the stored profile, keeping the id.
func (s *SQLiteStore) UpdateProfile(p domain.Profile) (bool, error) {
	args := profileArgs(p)[1:] // everything after id
	args = append(args, p.ID)
	res, err := s.db.Exec(`UPDATE profiles SET
name = ?, age = ?, gender = ?, occupation = ?, avatar = ?, budget_min = ?, budget_max = ?,
city = ?, state = ?, lat = ?, lng = ?, move_in_date = ?, cleanliness_level = ?, sleep_schedule = ?,
smoking = ?, drinking = ?, guests_frequency = ?, noise_tolerance = ?, introvert_extrovert = ?,
weekend_style = ?, hobbies_json = ?, life_intent_json = ?, cultural_json = ?, dealbreakers_json = ?,
saved_matches_json = ?
WHERE id = ?`, args...)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) DeleteProfile(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) ListProfiles(limit, offset int) ([]domain.Profile, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	total, err := s.CountProfiles()
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(`SELECT `+profileColumns+` FROM profiles ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

// AllProfiles returns the whole pool for a matching run.
func (s *SQLiteStore) AllProfiles() ([]domain.Profile, error) {
	rows, err := s.db.Query(`SELECT ` + profileColumns + ` FROM profiles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveMatch adds matchID to the profile's saved list; it is a no-op when
// already present. Returns the updated list.
func (s *SQLiteStore) SaveMatch(profileID, matchID string) ([]string, bool, error) {
	p, ok, err := s.GetProfile(profileID)
	if err != nil || !ok {
		return nil, ok, err
	}
	for _, id := range p.SavedMatches {
		if id == matchID {
			return p.SavedMatches, true, nil
		}
	}
	p.SavedMatches = append(p.SavedMatches, matchID)
	if err := s.writeSavedMatches(profileID, p.SavedMatches); err != nil {
		return nil, true, err
	}
	return p.SavedMatches, true, nil
}

func (s *SQLiteStore) UnsaveMatch(profileID, matchID string) ([]string, bool, error) {
	p, ok, err := s.GetProfile(profileID)
	if err != nil || !ok {
		return nil, ok, err
	}
	kept := make([]string, 0, len(p.SavedMatches))
	for _, id := range p.SavedMatches {
		if id != matchID {
			kept = append(kept, id)
		}
	}
	if err := s.writeSavedMatches(profileID, kept); err != nil {
		return nil, true, err
	}
	return kept, true, nil
}

func (s *SQLiteStore) writeSavedMatches(profileID string, saved []string) error {
	b, _ := json.Marshal(saved)
	_, err := s.db.Exec(`UPDATE profiles SET saved_matches_json = ? WHERE id = ?`, string(b), profileID)
	return err
}

// ---- rooms ----

const roomColumns = `id, title, rent, city, state, lat, lng, amenities_json, images_json,
vacancy_type, available_from, roommates_json, posted_by, description`

func roomArgs(r domain.Room) []any {
	amenities, _ := json.Marshal(r.Amenities)
	images, _ := json.Marshal(r.Images)
	roommates, _ := json.Marshal(r.CurrentRoommates)

	var availableFrom any
	if r.AvailableFrom != nil {
		availableFrom = r.AvailableFrom.Format(time.RFC3339)
	}

	return []any{
		r.ID, r.Title, r.Rent, r.Location.City, r.Location.State, r.Location.Lat, r.Location.Lng,
		string(amenities), string(images), r.VacancyType, availableFrom,
		string(roommates), r.PostedBy, r.Description,
	}
}

func scanRoom(row rowScanner) (domain.Room, error) {
	var r domain.Room
	var availableFrom sql.NullString
	var amenities, images, roommates string

	err := row.Scan(
		&r.ID, &r.Title, &r.Rent, &r.Location.City, &r.Location.State, &r.Location.Lat, &r.Location.Lng,
		&amenities, &images, &r.VacancyType, &availableFrom,
		&roommates, &r.PostedBy, &r.Description,
	)
	if err != nil {
		return domain.Room{}, err
	}

	if availableFrom.Valid {
		if t, err := time.Parse(time.RFC3339, availableFrom.String); err == nil {
			r.AvailableFrom = &t
		}
	}
	_ = json.Unmarshal([]byte(amenities), &r.Amenities)
	_ = json.Unmarshal([]byte(images), &r.Images)
	_ = json.Unmarshal([]byte(roommates), &r.CurrentRoommates)
	return r, nil
}

func (s *SQLiteStore) CountRooms() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM rooms`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) UpsertRooms(items []domain.Room) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO rooms (` + roomColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range items {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if _, err := stmt.Exec(roomArgs(r)...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) CreateRoom(r domain.Room) (domain.Room, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`INSERT INTO rooms (`+roomColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, roomArgs(r)...)
	return r, err
}

func (s *SQLiteStore) GetRoom(id string) (domain.Room, bool, error) {
	row := s.db.QueryRow(`SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id)
	r, err := scanRoom(row)
	if err == sql.ErrNoRows {
		return domain.Room{}, false, nil
	}
	if err != nil {
		return domain.Room{}, false, err
	}
	return r, true, nil
}

func (s *SQLiteStore) UpdateRoom(r domain.Room) (bool, error) {
	args := roomArgs(r)[1:]
	args = append(args, r.ID)
	res, err := s.db.Exec(`UPDATE rooms SET
title = ?, rent = ?, city = ?, state = ?, lat = ?, lng = ?, amenities_json = ?, images_json = ?,
vacancy_type = ?, available_from = ?, roommates_json = ?, posted_by = ?, description = ?
WHERE id = ?`, args...)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) DeleteRoom(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

// ListRoomsFiltered lists rooms with optional city filter (contains,
// case-insensitive), rent cap, vacancy type and sort order.
func (s *SQLiteStore) ListRoomsFiltered(limit, offset int, city string, maxRent int, vacancyType, sortBy string) ([]domain.Room, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where := make([]string, 0, 3)
	args := make([]any, 0, 6)

	if strings.TrimSpace(city) != "" {
		where = append(where, "LOWER(city) LIKE '%' || LOWER(?) || '%'")
		args = append(args, city)
	}
	if maxRent > 0 {
		where = append(where, "rent <= ?")
		args = append(args, maxRent)
	}
	if strings.TrimSpace(vacancyType) != "" {
		where = append(where, "vacancy_type = ?")
		args = append(args, vacancyType)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	order := "ORDER BY id"
	switch sortBy {
	case "rent_asc":
		order = "ORDER BY rent ASC"
	case "rent_desc":
		order = "ORDER BY rent DESC"
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM rooms`+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM rooms%s %s LIMIT ? OFFSET ?`, roomColumns, whereSQL, order)
	rows, err := s.db.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, r)
	}
	return out, total, rows.Err()
}

// AllRooms returns every room, used to annotate match results.
func (s *SQLiteStore) AllRooms() ([]domain.Room, error) {
	rows, err := s.db.Query(`SELECT ` + roomColumns + ` FROM rooms ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
