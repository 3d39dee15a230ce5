package db

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return &DB{sqlDB}, mock
}

func TestListVaccinations(t *testing.T) {
	database, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "vaccine_name", "age_group", "description_en", "description_hi", "schedule"}).
		AddRow(1, "BCG", "Birth", "Protection against tuberculosis", "तपेदिक से सुरक्षा", "At birth").
		AddRow(2, "Polio", "Birth, 6 weeks, 10 weeks, 14 weeks", "Protection against Polio", "पोलियो से सुरक्षा", "Birth, 6, 10, 14 weeks")
	mock.ExpectQuery(`FROM vaccination_schedule`).WillReturnRows(rows)

	records, err := database.ListVaccinations(context.Background())
	if err != nil {
		t.Fatalf("ListVaccinations() error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].VaccineName != "BCG" || records[0].DescriptionHI != "तपेदिक से सुरक्षा" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Schedule != "Birth, 6, 10, 14 weeks" {
		t.Errorf("unexpected second record schedule: %q", records[1].Schedule)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListVaccinations_QueryError(t *testing.T) {
	database, mock := newMockDB(t)

	mock.ExpectQuery(`FROM vaccination_schedule`).WillReturnError(errors.New("connection refused"))

	if _, err := database.ListVaccinations(context.Background()); err == nil {
		t.Error("expected error from failed query")
	}
}

func TestRecentAlerts(t *testing.T) {
	database, mock := newMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "disease", "location", "alert_level", "description_en", "description_hi", "created_at"}).
		AddRow(2, "Malaria", "Mumbai", "High", "High malaria cases in monsoon season. Take preventive measures.", "मानसून में मलेरिया के अधिक मामले। बचाव के उपाय करें।", now).
		AddRow(1, "Dengue", "Delhi", "Medium", "Increased dengue cases reported. Use mosquito nets and avoid water stagnation.", "डेंगू के मामले बढ़े हैं। मच्छरदानी का उपयोग करें और पानी जमने न दें।", now.Add(-time.Hour))
	mock.ExpectQuery(`FROM outbreak_alerts[\s\S]*ORDER BY created_at DESC[\s\S]*LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(rows)

	alerts, err := database.RecentAlerts(context.Background(), 5)
	if err != nil {
		t.Fatalf("RecentAlerts() error: %v", err)
	}

	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].Disease != "Malaria" {
		t.Errorf("expected newest alert first, got %q", alerts[0].Disease)
	}
	if alerts[1].Location != "Delhi" || alerts[1].AlertLevel != "Medium" {
		t.Errorf("unexpected second alert: %+v", alerts[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecentAlerts_Empty(t *testing.T) {
	database, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "disease", "location", "alert_level", "description_en", "description_hi", "created_at"})
	mock.ExpectQuery(`FROM outbreak_alerts`).WithArgs(5).WillReturnRows(rows)

	alerts, err := database.RecentAlerts(context.Background(), 5)
	if err != nil {
		t.Fatalf("RecentAlerts() error: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("expected no alerts, got %d", len(alerts))
	}
}

func TestUpsertVaccination(t *testing.T) {
	database, mock := newMockDB(t)

	rec := VaccinationRecord{
		VaccineName:   "BCG",
		AgeGroup:      "Birth",
		DescriptionEN: "Protection against tuberculosis",
		DescriptionHI: "तपेदिक से सुरक्षा",
		Schedule:      "At birth",
	}
	mock.ExpectExec(`INSERT INTO vaccination_schedule`).
		WithArgs(rec.VaccineName, rec.AgeGroup, rec.DescriptionEN, rec.DescriptionHI, rec.Schedule).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := database.UpsertVaccination(context.Background(), rec); err != nil {
		t.Fatalf("UpsertVaccination() error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertAlert_Error(t *testing.T) {
	database, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO outbreak_alerts`).WillReturnError(errors.New("disk full"))

	err := database.UpsertAlert(context.Background(), OutbreakAlert{Disease: "Dengue", Location: "Delhi"})
	if err == nil {
		t.Fatal("expected error from failed exec")
	}
	if got := err.Error(); !strings.Contains(got, "Dengue/Delhi") {
		t.Errorf("error should name the alert key, got %q", got)
	}
}
