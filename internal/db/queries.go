package db

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("record not found")
)

// UpsertVaccination inserts or replaces a vaccination schedule entry keyed by
// vaccine name
func (db *DB) UpsertVaccination(ctx context.Context, rec VaccinationRecord) error {
	query := `
		INSERT INTO vaccination_schedule (vaccine_name, age_group, description_en, description_hi, schedule)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (vaccine_name) DO UPDATE SET
			age_group = EXCLUDED.age_group,
			description_en = EXCLUDED.description_en,
			description_hi = EXCLUDED.description_hi,
			schedule = EXCLUDED.schedule
	`

	_, err := db.ExecContext(ctx, query,
		rec.VaccineName, rec.AgeGroup, rec.DescriptionEN, rec.DescriptionHI, rec.Schedule,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert vaccination %q: %w", rec.VaccineName, err)
	}
	return nil
}

// UpsertAlert inserts or replaces an outbreak alert keyed by (disease, location)
func (db *DB) UpsertAlert(ctx context.Context, alert OutbreakAlert) error {
	query := `
		INSERT INTO outbreak_alerts (disease, location, alert_level, description_en, description_hi, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (disease, location) DO UPDATE SET
			alert_level = EXCLUDED.alert_level,
			description_en = EXCLUDED.description_en,
			description_hi = EXCLUDED.description_hi,
			created_at = EXCLUDED.created_at
	`

	_, err := db.ExecContext(ctx, query,
		alert.Disease, alert.Location, alert.AlertLevel, alert.DescriptionEN, alert.DescriptionHI, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert alert %s/%s: %w", alert.Disease, alert.Location, err)
	}
	return nil
}

// ListVaccinations returns the full vaccination schedule
func (db *DB) ListVaccinations(ctx context.Context) ([]VaccinationRecord, error) {
	query := `
		SELECT id, vaccine_name, age_group, description_en, description_hi, schedule
		FROM vaccination_schedule
		ORDER BY id
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaccinations: %w", err)
	}
	defer rows.Close()

	var records []VaccinationRecord
	for rows.Next() {
		var rec VaccinationRecord
		if err := rows.Scan(&rec.ID, &rec.VaccineName, &rec.AgeGroup, &rec.DescriptionEN, &rec.DescriptionHI, &rec.Schedule); err != nil {
			return nil, fmt.Errorf("failed to scan vaccination: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// RecentAlerts returns the N most recently created outbreak alerts, newest first
func (db *DB) RecentAlerts(ctx context.Context, limit int) ([]OutbreakAlert, error) {
	query := `
		SELECT id, disease, location, alert_level, description_en, description_hi, created_at
		FROM outbreak_alerts
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]OutbreakAlert, 0, limit)
	for rows.Next() {
		var alert OutbreakAlert
		if err := rows.Scan(&alert.ID, &alert.Disease, &alert.Location, &alert.AlertLevel, &alert.DescriptionEN, &alert.DescriptionHI, &alert.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}
