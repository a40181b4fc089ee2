package alerts

import (
	"fmt"
	"mirrorbot/pkg/domain"
	"time"
)

// IncidentsPageURL is the public page linked from every alert message.
const IncidentsPageURL = "https://www.qfes.qld.gov.au/Current-Incidents"

// NotificationText renders the Markdown alert message for an incident.
// Missing fields are replaced with explicit placeholders so the message
// always has the same shape.
func NotificationText(incident domain.Incident) string {
	category := incident.Category
	if category == "" {
		category = "Unknown Category"
	}

	title := incident.Title
	if title == "" {
		title = "Untitled"
	}

	content := incident.Content
	if content == "" {
		content = "No content"
	}

	published := "unknown"
	if !incident.PublishedAt.IsZero() {
		published = incident.PublishedAt.Format(time.RFC1123Z)
	}

	return fmt.Sprintf("#### ⚠️ %s\n\n**%s**\n\n%s\n\n**Published:** %s\n**Link:** %s",
		category, title, content, published, IncidentsPageURL)
}
