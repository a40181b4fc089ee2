// Package webhook provides a mattermost.Poster implementation backed by a
// Mattermost incoming webhook.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mirrorbot/pkg/mattermost"
	"mirrorbot/pkg/serrors"
	"net/http"
	"strings"

	"github.com/go-faster/jx"
	"golang.org/x/time/rate"
)

// Client posts messages to a single incoming webhook URL. It is safe for
// concurrent use; concurrent posts share one rate limiter.
type Client struct {
	httpClient *http.Client  // httpClient performs HTTP requests to the Mattermost server
	url        string        // url is the incoming webhook endpoint
	limiter    *rate.Limiter // limiter throttles outgoing posts
}

// New constructs a Client posting to the given incoming webhook URL. Posts
// wait on the provided limiter first; a nil limiter disables throttling.
func New(httpClient *http.Client, url string, limiter *rate.Limiter) *Client {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}

	return &Client{
		httpClient: httpClient,
		url:        url,
		limiter:    limiter,
	}
}

// Post delivers the message to the webhook.
func (c *Client) Post(ctx context.Context, msg mattermost.Message) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for rate limiter: %w", err)
	}

	e := &jx.Encoder{}
	msg.Encode(e)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(e.Bytes()))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("post failed: %s", strings.TrimSpace(string(b)))
	}

	return nil
}

// Ensure Client conforms to the mattermost.Poster interface at compile time.
var _ mattermost.Poster = (*Client)(nil)
