// Package stringdb is a thin client for the STRING protein-interaction
// database network endpoint. It is the single upstream data source of the
// pipeline; everything it returns goes straight into the parser.
package stringdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dd0wney/prothub/pkg/interactions"
)

const (
	DefaultBaseURL = "https://string-db.org/api"

	outputFormat = "json"
	method       = "network"
)

// Client queries the STRING API. The zero value is not usable; construct
// with NewClient.
type Client struct {
	baseURL        string
	callerIdentity string
	httpClient     *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCallerIdentity sets the caller_identity parameter the STRING API asks
// integrators to send.
func WithCallerIdentity(identity string) Option {
	return func(c *Client) { c.callerIdentity = identity }
}

// NewClient creates a STRING client. An empty baseURL selects the public
// API endpoint.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		callerIdentity: "prothub",
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Network fetches interaction records for the given protein identifiers.
// minScore is the confidence threshold in [0,1]; the API takes it scaled to
// [0,1000]. The call is synchronous and atomic: it returns the complete
// record batch or an error, never a partial result.
func (c *Client) Network(ctx context.Context, identifiers []string, species int, minScore float64) ([]interactions.Record, error) {
	if len(identifiers) == 0 {
		return nil, fmt.Errorf("stringdb: no identifiers given")
	}

	params := url.Values{}
	// The network endpoint takes multiple identifiers separated by
	// carriage returns.
	params.Set("identifiers", strings.Join(identifiers, "\r"))
	params.Set("species", strconv.Itoa(species))
	params.Set("caller_identity", c.callerIdentity)
	params.Set("required_score", strconv.Itoa(int(minScore*1000)))

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, outputFormat, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("stringdb: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stringdb: network request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stringdb: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("stringdb: unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var records []interactions.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("stringdb: decoding response: %w", err)
	}
	return records, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
