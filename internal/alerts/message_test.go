package alerts_test

import (
	"mirrorbot/internal/alerts"
	"mirrorbot/pkg/domain"
	"testing"
	"time"
)

func TestNotificationText(t *testing.T) {
	brisbane := time.FixedZone("", 10*60*60)

	full := domain.Incident{
		Category:    "Watch and Act",
		Title:       "PREPARE TO LEAVE - Cecil Plains and Dunmore",
		Content:     "A bushfire is travelling towards Dunmore Road.",
		PublishedAt: time.Date(2023, 9, 8, 15, 52, 0, 0, brisbane),
	}

	want := "#### ⚠️ Watch and Act\n\n" +
		"**PREPARE TO LEAVE - Cecil Plains and Dunmore**\n\n" +
		"A bushfire is travelling towards Dunmore Road.\n\n" +
		"**Published:** Fri, 08 Sep 2023 15:52:00 +1000\n" +
		"**Link:** https://www.qfes.qld.gov.au/Current-Incidents"
	if got := alerts.NotificationText(full); got != want {
		t.Errorf("full incident:\ngot  %q\nwant %q", got, want)
	}

	empty := domain.Incident{}
	want = "#### ⚠️ Unknown Category\n\n" +
		"**Untitled**\n\n" +
		"No content\n\n" +
		"**Published:** unknown\n" +
		"**Link:** https://www.qfes.qld.gov.au/Current-Incidents"
	if got := alerts.NotificationText(empty); got != want {
		t.Errorf("empty incident:\ngot  %q\nwant %q", got, want)
	}
}
