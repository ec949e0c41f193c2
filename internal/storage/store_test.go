package storage

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/roomradar/roommate-matching/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store
}

func sampleProfile(id string) domain.Profile {
	moveIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return domain.Profile{
		ID:          id,
		Name:        "Asha",
		Age:         24,
		Gender:      "female",
		Occupation:  "student",
		BudgetRange: domain.BudgetRange{Min: 6000, Max: 12000},
		Location:    domain.Location{City: "Bengaluru", State: "Karnataka", Lat: 12.97, Lng: 77.59},
		MoveInDate:  &moveIn,

		CleanlinessLevel: 4,
		SleepSchedule:    "early",
		Smoking:          false,
		Drinking:         true,
		GuestsFrequency:  "medium",
		NoiseTolerance:   "low",

		IntrovertExtrovertScale: 2,
		WeekendStyle:            "homebody",
		Hobbies:                 []string{"reading", "yoga"},
		LifeIntent: domain.LifeIntent{
			LifeMode:               "growth",
			LifeGoals:              []string{"higher_studies"},
			DailyEnergyLevel:       "medium",
			StruggleStabilityScale: 4,
		},
		CulturalOpenness: domain.CulturalOpenness{
			CulturalPreference:  "mixed",
			SameStatePreference: "open_to_all",
		},
		Dealbreakers: &domain.Dealbreakers{
			NoSmokers:        true,
			GenderPreference: "same_gender",
			MaxBudget:        15000,
			SameCity:         true,
		},
	}
}

func TestProfileRoundtrip(t *testing.T) {
	store := newTestStore(t)
	in := sampleProfile("p1")

	created, err := store.CreateProfile(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "p1" {
		t.Fatalf("id=%q want=p1", created.ID)
	}

	got, ok, err := store.GetProfile("p1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Name != in.Name || got.Age != in.Age || got.BudgetRange != in.BudgetRange {
		t.Fatalf("scalar mismatch: got=%+v", got)
	}
	if got.MoveInDate == nil || !got.MoveInDate.Equal(*in.MoveInDate) {
		t.Fatalf("move_in_date=%v want=%v", got.MoveInDate, in.MoveInDate)
	}
	if !reflect.DeepEqual(got.Hobbies, in.Hobbies) {
		t.Fatalf("hobbies=%v want=%v", got.Hobbies, in.Hobbies)
	}
	if !reflect.DeepEqual(got.LifeIntent, in.LifeIntent) {
		t.Fatalf("life intent=%+v want=%+v", got.LifeIntent, in.LifeIntent)
	}
	if got.Dealbreakers == nil || *got.Dealbreakers != *in.Dealbreakers {
		t.Fatalf("dealbreakers=%+v want=%+v", got.Dealbreakers, in.Dealbreakers)
	}
}

func TestProfileNilDealbreakersStayNil(t *testing.T) {
	store := newTestStore(t)
	in := sampleProfile("p1")
	in.Dealbreakers = nil
	in.MoveInDate = nil

	if _, err := store.CreateProfile(in); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, _, err := store.GetProfile("p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Dealbreakers != nil {
		t.Fatalf("dealbreakers=%+v want=nil", got.Dealbreakers)
	}
	if got.MoveInDate != nil {
		t.Fatalf("move_in_date=%v want=nil", got.MoveInDate)
	}
}

func TestCreateProfileAssignsID(t *testing.T) {
	store := newTestStore(t)
	in := sampleProfile("")

	created, err := store.CreateProfile(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if _, ok, _ := store.GetProfile(created.ID); !ok {
		t.Fatalf("profile %s not found after create", created.ID)
	}
}

func TestUpdateAndDeleteProfile(t *testing.T) {
	store := newTestStore(t)
	in := sampleProfile("p1")
	if _, err := store.CreateProfile(in); err != nil {
		t.Fatalf("create: %v", err)
	}

	in.Name = "Asha Rao"
	in.CleanlinessLevel = 5
	ok, err := store.UpdateProfile(in)
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}
	got, _, _ := store.GetProfile("p1")
	if got.Name != "Asha Rao" || got.CleanlinessLevel != 5 {
		t.Fatalf("after update: %+v", got)
	}

	ok, err = store.DeleteProfile("p1")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if _, found, _ := store.GetProfile("p1"); found {
		t.Fatal("profile still present after delete")
	}

	if ok, _ := store.UpdateProfile(in); ok {
		t.Fatal("update of missing profile reported ok")
	}
	if ok, _ := store.DeleteProfile("p1"); ok {
		t.Fatal("second delete reported ok")
	}
}

func TestListProfilesPagination(t *testing.T) {
	store := newTestStore(t)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		p := sampleProfile(id)
		if _, err := store.CreateProfile(p); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	page, total, err := store.ListProfiles(2, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 {
		t.Fatalf("total=%d want=5", total)
	}
	if len(page) != 2 {
		t.Fatalf("page len=%d want=2", len(page))
	}
}

func TestUpsertProfilesIgnoresExisting(t *testing.T) {
	store := newTestStore(t)
	p := sampleProfile("p1")
	if err := store.UpsertProfiles([]domain.Profile{p}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	p.Name = "Changed"
	if err := store.UpsertProfiles([]domain.Profile{p}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, _, _ := store.GetProfile("p1")
	if got.Name != "Asha" {
		t.Fatalf("seed overwrote existing row: name=%q", got.Name)
	}
	if n, _ := store.CountProfiles(); n != 1 {
		t.Fatalf("count=%d want=1", n)
	}
}

func TestSavedMatches(t *testing.T) {
	store := newTestStore(t)
	for _, id := range []string{"p1", "p2", "p3"} {
		if _, err := store.CreateProfile(sampleProfile(id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	saved, ok, err := store.SaveMatch("p1", "p2")
	if err != nil || !ok {
		t.Fatalf("save: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(saved, []string{"p2"}) {
		t.Fatalf("saved=%v want=[p2]", saved)
	}

	// Saving twice must not duplicate.
	saved, _, _ = store.SaveMatch("p1", "p2")
	if !reflect.DeepEqual(saved, []string{"p2"}) {
		t.Fatalf("saved after repeat=%v want=[p2]", saved)
	}

	saved, _, _ = store.SaveMatch("p1", "p3")
	if len(saved) != 2 {
		t.Fatalf("saved=%v want two entries", saved)
	}

	saved, ok, err = store.UnsaveMatch("p1", "p2")
	if err != nil || !ok {
		t.Fatalf("unsave: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(saved, []string{"p3"}) {
		t.Fatalf("saved after unsave=%v want=[p3]", saved)
	}

	if _, ok, _ := store.SaveMatch("missing", "p2"); ok {
		t.Fatal("save against missing profile reported ok")
	}
}

func sampleRoom(id string) domain.Room {
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return domain.Room{
		ID:               id,
		Title:            "2BHK near metro",
		Rent:             9000,
		Location:         domain.Location{City: "Bengaluru", State: "Karnataka"},
		Amenities:        []string{"wifi", "washing machine"},
		VacancyType:      "shared",
		AvailableFrom:    &from,
		CurrentRoommates: []string{"p1"},
		PostedBy:         "p1",
		Description:      "Quiet street, good light.",
	}
}

func TestRoomRoundtrip(t *testing.T) {
	store := newTestStore(t)
	in := sampleRoom("r1")

	if _, err := store.CreateRoom(in); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, ok, err := store.GetRoom("r1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Title != in.Title || got.Rent != in.Rent || got.VacancyType != in.VacancyType {
		t.Fatalf("scalar mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.Amenities, in.Amenities) {
		t.Fatalf("amenities=%v want=%v", got.Amenities, in.Amenities)
	}
	if !reflect.DeepEqual(got.CurrentRoommates, in.CurrentRoommates) {
		t.Fatalf("roommates=%v want=%v", got.CurrentRoommates, in.CurrentRoommates)
	}
	if got.AvailableFrom == nil || !got.AvailableFrom.Equal(*in.AvailableFrom) {
		t.Fatalf("available_from=%v want=%v", got.AvailableFrom, in.AvailableFrom)
	}
}

func TestListRoomsFiltered(t *testing.T) {
	store := newTestStore(t)

	cheap := sampleRoom("cheap")
	cheap.Rent = 6000
	mid := sampleRoom("mid")
	mid.Rent = 9000
	mid.VacancyType = "single"
	pricey := sampleRoom("pricey")
	pricey.Rent = 20000
	pricey.Location = domain.Location{City: "Mumbai", State: "Maharashtra"}

	for _, r := range []domain.Room{cheap, mid, pricey} {
		if _, err := store.CreateRoom(r); err != nil {
			t.Fatalf("create %s: %v", r.ID, err)
		}
	}

	rooms, total, err := store.ListRoomsFiltered(50, 0, "bengaluru", 0, "", "")
	if err != nil {
		t.Fatalf("list by city: %v", err)
	}
	if total != 2 || len(rooms) != 2 {
		t.Fatalf("city filter: total=%d len=%d want 2/2", total, len(rooms))
	}

	rooms, total, err = store.ListRoomsFiltered(50, 0, "", 9000, "", "")
	if err != nil {
		t.Fatalf("list by rent: %v", err)
	}
	if total != 2 {
		t.Fatalf("rent filter total=%d want=2", total)
	}

	rooms, _, err = store.ListRoomsFiltered(50, 0, "", 0, "single", "")
	if err != nil {
		t.Fatalf("list by vacancy: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != "mid" {
		t.Fatalf("vacancy filter rooms=%v", rooms)
	}

	rooms, _, err = store.ListRoomsFiltered(50, 0, "", 0, "", "rent_asc")
	if err != nil {
		t.Fatalf("list sorted: %v", err)
	}
	if rooms[0].ID != "cheap" || rooms[2].ID != "pricey" {
		t.Fatalf("rent_asc order: %s..%s", rooms[0].ID, rooms[2].ID)
	}

	rooms, _, err = store.ListRoomsFiltered(50, 0, "", 0, "", "rent_desc")
	if err != nil {
		t.Fatalf("list sorted desc: %v", err)
	}
	if rooms[0].ID != "pricey" {
		t.Fatalf("rent_desc first=%s want=pricey", rooms[0].ID)
	}
}
