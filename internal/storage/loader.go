package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/roomradar/roommate-matching/internal/domain"
)

// LoadProfilesFromFile reads seed profiles from a JSON file.
func LoadProfilesFromFile(path string) ([]domain.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	var profiles []domain.Profile
	if err := json.Unmarshal(b, &profiles); err != nil {
		return nil, fmt.Errorf("unmarshal profiles: %w", err)
	}
	return profiles, nil
}

// LoadRoomsFromFile reads seed rooms from a JSON file.
func LoadRoomsFromFile(path string) ([]domain.Room, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rooms file: %w", err)
	}

	var rooms []domain.Room
	if err := json.Unmarshal(b, &rooms); err != nil {
		return nil, fmt.Errorf("unmarshal rooms: %w", err)
	}
	return rooms, nil
}
