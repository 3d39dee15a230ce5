package reference

import (
	"context"
	"strings"

	"github.com/healthmitra/healthmitra-be/internal/db"
)

// alertDisplayLimit caps how many alerts appear in a summary, newest first
const alertDisplayLimit = 5

// Querier is the subset of db operations the store reads from
type Querier interface {
	ListVaccinations(ctx context.Context) ([]db.VaccinationRecord, error)
	RecentAlerts(ctx context.Context, limit int) ([]db.OutbreakAlert, error)
}

// Store renders the read-mostly reference datasets as chat-ready text
type Store struct {
	q Querier
}

// NewStore creates a reference store over the given querier
func NewStore(q Querier) *Store {
	return &Store{q: q}
}

// VaccinationSummary renders the full vaccination schedule in the requested
// language, one bulleted line per record
func (s *Store) VaccinationSummary(ctx context.Context, language string) (string, error) {
	records, err := s.q.ListVaccinations(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if language == "hi" {
		sb.WriteString("टीकाकरण कार्यक्रम:\n\n")
		for _, rec := range records {
			sb.WriteString("• " + rec.VaccineName + ": " + rec.DescriptionHI + " - " + rec.Schedule + "\n")
		}
	} else {
		sb.WriteString("Vaccination Schedule:\n\n")
		for _, rec := range records {
			sb.WriteString("• " + rec.VaccineName + ": " + rec.DescriptionEN + " - " + rec.Schedule + "\n")
		}
	}

	return sb.String(), nil
}

// OutbreakSummary renders the most recent outbreak alerts in the requested
// language, or a fixed no-alerts string when none are stored
func (s *Store) OutbreakSummary(ctx context.Context, language string) (string, error) {
	alerts, err := s.q.RecentAlerts(ctx, alertDisplayLimit)
	if err != nil {
		return "", err
	}

	if len(alerts) == 0 {
		if language == "hi" {
			return "कोई वर्तमान प्रकोप अलर्ट नहीं है।", nil
		}
		return "No current outbreak alerts.", nil
	}

	var sb strings.Builder
	if language == "hi" {
		sb.WriteString("वर्तमान स्वास्थ्य अलर्ट:\n\n")
		for _, alert := range alerts {
			sb.WriteString("⚠️ " + alert.Location + " में " + alert.Disease + " - " + alert.AlertLevel + " स्तर\n")
			sb.WriteString(alert.DescriptionHI + "\n\n")
		}
	} else {
		sb.WriteString("Current Health Alerts:\n\n")
		for _, alert := range alerts {
			sb.WriteString("⚠️ " + alert.Disease + " in " + alert.Location + " - " + alert.AlertLevel + " level\n")
			sb.WriteString(alert.DescriptionEN + "\n\n")
		}
	}

	return sb.String(), nil
}
