package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

const (
	// defaultTimeout bounds a single callback POST end to end.
	defaultTimeout = 10 * time.Second
	// maxResponseBodySize caps how much of an error response is read for logging.
	maxResponseBodySize = 1024
)

// Poster delivers rendered messages to the one-time callback URL a command
// supplied. Delivery is best-effort: a failed POST is returned to the caller
// for logging and never retried, since the URL's validity window is short and
// the original response channel is already closed.
type Poster struct {
	client *http.Client
}

// New creates a Poster. A nil client gets a default with a bounded timeout.
func New(client *http.Client) *Poster {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Poster{client: client}
}

// Post marshals the message and POSTs it as JSON. Non-2xx statuses are errors.
func (p *Poster) Post(ctx context.Context, url string, msg slack.Msg) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal callback payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "reword-gw/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to callback URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return fmt.Errorf("callback returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
