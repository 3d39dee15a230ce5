package fallback

import (
	"context"
	"log"
	"strings"
)

// ReferenceData renders the stored reference datasets as chat text
type ReferenceData interface {
	VaccinationSummary(ctx context.Context, language string) (string, error)
	OutbreakSummary(ctx context.Context, language string) (string, error)
}

// Feed is the optional live outbreak-news source. Fetch returns nil when no
// data is available.
type Feed interface {
	Fetch(ctx context.Context) map[string]interface{}
}

// Composer produces deterministic canned answers when the AI path is
// unavailable. For a fixed store, the same (text, language) pair always
// yields identical output.
type Composer struct {
	store ReferenceData
	feed  Feed
}

// NewComposer creates a composer. feed may be nil to disable the live-feed
// notice.
func NewComposer(store ReferenceData, feed Feed) *Composer {
	return &Composer{
		store: store,
		feed:  feed,
	}
}

// Compose matches the message against the ordered topic rules and returns the
// first matching rule's rendered template, or the default capability menu.
func (c *Composer) Compose(ctx context.Context, message, language string) string {
	lower := strings.ToLower(message)

	for _, r := range topicRules {
		if !matchesAny(lower, r.keywords) {
			continue
		}

		switch r.topic {
		case TopicVaccination:
			return c.vaccinationAnswer(ctx, language)
		case TopicOutbreak:
			return c.outbreakAnswer(ctx, language)
		default:
			return pick(r.templates, language)
		}
	}

	return Menu(language)
}

// Menu returns the default capability summary for a language
func Menu(language string) string {
	return pick(menuTemplates, language)
}

func (c *Composer) vaccinationAnswer(ctx context.Context, language string) string {
	summary, err := c.store.VaccinationSummary(ctx, language)
	if err != nil {
		log.Printf("Failed to read vaccination schedule: %v", err)
		return Menu(language)
	}
	return summary
}

func (c *Composer) outbreakAnswer(ctx context.Context, language string) string {
	summary, err := c.store.OutbreakSummary(ctx, language)
	if err != nil {
		log.Printf("Failed to read outbreak alerts: %v", err)
		return Menu(language)
	}

	if c.feed != nil {
		if data := c.feed.Fetch(ctx); data != nil {
			return summary + pick(liveFeedNotices, language)
		}
	}

	return summary
}
