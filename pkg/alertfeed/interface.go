// Package alertfeed defines the types and interfaces used to retrieve
// emergency alert entries from a published feed.
package alertfeed

import (
	"context"
	"mirrorbot/pkg/domain"
	"time"
)

// Entry is one alert in a feed. Everything except ID is optional and may be
// empty; consumers choose their own fallbacks for missing fields.
type Entry struct {
	ID          string          // ID is the feed-scoped identifier of the alert.
	Category    string          // Category is the alert level, e.g. "Watch and Act".
	Title       string          // Title is the alert headline.
	Content     string          // Content is the alert body text.
	Point       *domain.LatLong // Point is where the alert applies, when the feed provides one.
	PublishedAt time.Time       // PublishedAt is when the alert was first published.
	UpdatedAt   time.Time       // UpdatedAt is when the alert was last revised.
}

// Source is the abstraction for alert feeds. Implementations fetch the
// currently published set of alerts from a backing provider.
//
//go:generate mockgen -package mockalertfeed -source=interface.go -destination=mock/mockalertfeed.go *
type Source interface {
	// Entries fetches all currently published alerts, in feed order.
	Entries(ctx context.Context) ([]Entry, error)
}
