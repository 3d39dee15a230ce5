package db

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectSeed(mock sqlmock.Sqlmock) {
	for range seedVaccinations {
		mock.ExpectExec(`INSERT INTO vaccination_schedule[\s\S]*ON CONFLICT \(vaccine_name\) DO UPDATE`).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	for i := 0; i < 2; i++ {
		mock.ExpectExec(`INSERT INTO outbreak_alerts[\s\S]*ON CONFLICT \(disease, location\) DO UPDATE`).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
}

func TestSeed_UpsertsByUniqueKey(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer sqlDB.Close()

	expectSeed(mock)

	if err := Seed(context.Background(), &DB{sqlDB}); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer sqlDB.Close()

	// Running Seed twice re-issues the same keyed upserts; the unique
	// constraints guarantee one row per key
	expectSeed(mock)
	expectSeed(mock)

	database := &DB{sqlDB}
	for i := 0; i < 2; i++ {
		if err := Seed(context.Background(), database); err != nil {
			t.Fatalf("Seed() run %d error: %v", i+1, err)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSeedData_UniqueKeys(t *testing.T) {
	names := make(map[string]bool)
	for _, rec := range seedVaccinations {
		if names[rec.VaccineName] {
			t.Errorf("duplicate vaccine name %q in seed data", rec.VaccineName)
		}
		names[rec.VaccineName] = true
	}

	keys := make(map[string]bool)
	for _, alert := range seedAlerts(time.Now()) {
		key := alert.Disease + "/" + alert.Location
		if keys[key] {
			t.Errorf("duplicate alert key %q in seed data", key)
		}
		keys[key] = true
	}
}
