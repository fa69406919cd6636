// Package pushover is a minimal client for the Pushover REST API. It
// covers the one-shot message POST and the sound catalog lookup.
package pushover

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// MessagesURL is the endpoint for submitting a notification.
	MessagesURL = "https://api.pushover.net/1/messages.json"

	// SoundsURL is the endpoint for listing the available alert tones.
	SoundsURL = "https://api.pushover.net/1/sounds.json"

	userAgent = "pushcli"
)

// Client issues requests against the Pushover API.
type Client struct {
	httpClient  *http.Client
	messagesURL string
	soundsURL   string
}

// NewClient creates a Pushover client. A zero timeout leaves the
// transport's own connection behavior in place with no overall deadline.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		messagesURL: MessagesURL,
		soundsURL:   SoundsURL,
	}
}

// SetBaseURL points the client at a different API host. This is intended
// for testing purposes.
func (c *Client) SetBaseURL(base string) {
	c.messagesURL = base + "/1/messages.json"
	c.soundsURL = base + "/1/sounds.json"
}

// Outcome is the classified result of one message POST. Reasons is empty
// on success; on failure it carries the transport problem (if any)
// followed by every error string the API reported in the response body.
type Outcome struct {
	Reasons   []string
	RequestID string
}

// Success reports whether the notification was accepted.
func (o Outcome) Success() bool {
	return len(o.Reasons) == 0
}

// apiResponse is the shape of a Pushover response body. Only the fields
// the client acts on are declared.
type apiResponse struct {
	Status  int      `json:"status"`
	Request string   `json:"request"`
	Errors  []string `json:"errors"`
}

// Send POSTs the form fields to the messages endpoint and classifies the
// result. Two independent sources contribute failure reasons: a non-2xx
// status (or the transport error itself), and the errors array inside a
// parseable response body. The API can return HTTP 200 with an internal
// error list, a non-200 with no parseable body, or both at once, so both
// checks always run. An unparseable body is not itself an error; the
// status check is authoritative for transport problems.
func (c *Client) Send(ctx context.Context, fields url.Values) Outcome {
	var out Outcome

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.messagesURL,
		strings.NewReader(fields.Encode()))
	if err != nil {
		out.Reasons = append(out.Reasons, fmt.Sprintf("building request: %v", err))
		return out
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		out.Reasons = append(out.Reasons, fmt.Sprintf("sending request: %v", err))
		return out
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		out.Reasons = append(out.Reasons, fmt.Sprintf("server returned %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out
	}
	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return out
	}
	out.RequestID = parsed.Request
	out.Reasons = append(out.Reasons, parsed.Errors...)
	return out
}

// soundsResponse is the shape of the sound catalog response.
type soundsResponse struct {
	Status int               `json:"status"`
	Sounds map[string]string `json:"sounds"`
	Errors []string          `json:"errors"`
}

// Sounds fetches the catalog of alert tones for the given application
// token. The result maps sound name to its human-readable description.
func (c *Client) Sounds(ctx context.Context, token string) (map[string]string, error) {
	endpoint := c.soundsURL + "?token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	var parsed soundsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("server rejected request: %s", strings.Join(parsed.Errors, "; "))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return parsed.Sounds, nil
}
