// Package qfes provides an alertfeed.Source implementation backed by the
// Queensland Fire and Emergency Services bushfire alert feed, an Atom
// document with GeoRSS point extensions.
package qfes

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"mirrorbot/pkg/alertfeed"
	"mirrorbot/pkg/domain"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultFeedURL is the published QFES bushfire alert feed. The URL is a
// permanent redirect to the actual document; the HTTP client follows it.
const DefaultFeedURL = "https://www.qfes.qld.gov.au/data/alerts/bushfireAlert.xml"

type xmlCategory struct {
	Term string `xml:"term,attr"`
}

type xmlEntry struct {
	ID        string      `xml:"http://www.w3.org/2005/Atom id"`
	Category  xmlCategory `xml:"http://www.w3.org/2005/Atom category"`
	Title     string      `xml:"http://www.w3.org/2005/Atom title"`
	Content   string      `xml:"http://www.w3.org/2005/Atom content"`
	Published string      `xml:"http://www.w3.org/2005/Atom published"`
	Updated   string      `xml:"http://www.w3.org/2005/Atom updated"`
	Point     string      `xml:"http://www.georss.org/georss point"`
}

type xmlFeed struct {
	XMLName xml.Name   `xml:"http://www.w3.org/2005/Atom feed"`
	Entries []xmlEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

// Client fetches and decodes the QFES feed. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the feed host
	url        string       // url is the feed document location
}

// New constructs a Client reading from the given feed URL. An empty URL
// selects DefaultFeedURL.
func New(httpClient *http.Client, url string) *Client {
	if url == "" {
		url = DefaultFeedURL
	}

	return &Client{
		httpClient: httpClient,
		url:        url,
	}
}

// Entries fetches the feed and converts every Atom entry into an
// alertfeed.Entry. Entries with unparseable timestamps or points keep zero
// values for those fields rather than failing the whole fetch.
func (c *Client) Entries(ctx context.Context) ([]alertfeed.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed fetch failed: %s", strings.TrimSpace(string(b)))
	}

	var feed xmlFeed
	if err := xml.Unmarshal(b, &feed); err != nil {
		return nil, fmt.Errorf("could not parse feed: %w", err)
	}

	entries := make([]alertfeed.Entry, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		entries = append(entries, alertfeed.Entry{
			ID:          e.ID,
			Category:    e.Category.Term,
			Title:       e.Title,
			Content:     e.Content,
			Point:       parsePoint(e.Point),
			PublishedAt: parseTime(e.Published),
			UpdatedAt:   parseTime(e.Updated),
		})
	}

	return entries, nil
}

// parsePoint reads a GeoRSS "lat long" pair, skipping tokens that are not
// numbers. It returns nil unless two coordinates are present.
func parsePoint(s string) *domain.LatLong {
	coords := make([]float64, 0, 2)
	for _, field := range strings.Fields(s) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			continue
		}
		coords = append(coords, v)
		if len(coords) == 2 {
			break
		}
	}
	if len(coords) < 2 {
		return nil
	}

	return &domain.LatLong{Lat: coords[0], Long: coords[1]}
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}

	return t
}

// Ensure Client conforms to the alertfeed.Source interface at compile time.
var _ alertfeed.Source = (*Client)(nil)
