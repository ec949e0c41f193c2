package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfilesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	payload := `[
  {
    "id": "u1",
    "name": "Asha",
    "age": 24,
    "budget_range": { "min": 6000, "max": 12000 },
    "location": { "city": "Bengaluru", "state": "Karnataka" },
    "hobbies": ["reading"],
    "dealbreakers": { "no_smokers": true, "same_city": true }
  }
]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	profiles, err := LoadProfilesFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("profiles=%d want=1", len(profiles))
	}
	p := profiles[0]
	if p.ID != "u1" || p.BudgetRange.Max != 12000 {
		t.Fatalf("profile=%+v", p)
	}
	if p.Dealbreakers == nil || !p.Dealbreakers.NoSmokers {
		t.Fatalf("dealbreakers=%+v", p.Dealbreakers)
	}
}

func TestLoadProfilesFromFileErrors(t *testing.T) {
	if _, err := LoadProfilesFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadProfilesFromFile(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadRoomsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	payload := `[
  {
    "id": "r1",
    "title": "2BHK",
    "rent": 9000,
    "location": { "city": "Bengaluru", "state": "Karnataka" },
    "vacancy_type": "shared",
    "current_roommates": ["u1"]
  }
]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rooms, err := LoadRoomsFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Rent != 9000 {
		t.Fatalf("rooms=%+v", rooms)
	}
}
