package main

import (
	"log"
	"net/http"
	"os"

	"github.com/roomradar/roommate-matching/internal/config"
	httpapi "github.com/roomradar/roommate-matching/internal/http"
	"github.com/roomradar/roommate-matching/internal/matching"
	"github.com/roomradar/roommate-matching/internal/storage"
)

func main() {
	cfg := config.Load("config.yaml")

	store, err := storage.OpenSQLite(cfg.Storage.DBPath)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	seedIfEmpty(store, cfg)

	w, err := matching.LoadWeightsFromFile(cfg.Storage.WeightsPath)
	if err != nil {
		log.Printf("use default weights (reason: %v)", err)
		w = matching.DefaultWeights()
	}

	engine := matching.NewEngine(w)
	srv := httpapi.NewServer(engine, store)

	log.Printf("API listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Routes()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// seedIfEmpty loads the JSON seed datasets on first start. Missing seed
// files are fine: the API starts with empty tables.
func seedIfEmpty(store *storage.SQLiteStore, cfg *config.Config) {
	if n, err := store.CountProfiles(); err == nil && n == 0 {
		if _, statErr := os.Stat(cfg.Storage.ProfilesPath); statErr == nil {
			profiles, err := storage.LoadProfilesFromFile(cfg.Storage.ProfilesPath)
			if err != nil {
				log.Fatalf("load profiles: %v", err)
			}
			if err := store.UpsertProfiles(profiles); err != nil {
				log.Fatalf("seed profiles: %v", err)
			}
			log.Printf("seeded %d profiles from %s", len(profiles), cfg.Storage.ProfilesPath)
		}
	}

	if n, err := store.CountRooms(); err == nil && n == 0 {
		if _, statErr := os.Stat(cfg.Storage.RoomsPath); statErr == nil {
			rooms, err := storage.LoadRoomsFromFile(cfg.Storage.RoomsPath)
			if err != nil {
				log.Fatalf("load rooms: %v", err)
			}
			if err := store.UpsertRooms(rooms); err != nil {
				log.Fatalf("seed rooms: %v", err)
			}
			log.Printf("seeded %d rooms from %s", len(rooms), cfg.Storage.RoomsPath)
		}
	}
}
