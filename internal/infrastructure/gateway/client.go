// Package gateway is the typed REST client for the travel backend.
//
// Each method maps to exactly one HTTP call. Nothing is retried and no timeout
// is applied beyond the caller's context.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Client implements ports.Gateway over HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.Gateway = (*Client)(nil)

// New returns a Client for baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// call describes one backend request.
type call struct {
	resource string
	op       string
	fallback string
	method   string
	path     string
	query    url.Values
	body     any
}

// do performs c and decodes a 2xx body into out. out may be nil. An empty
// success body leaves out untouched.
func (c *Client) do(ctx context.Context, r call, out any) error {
	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", r.op, err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	RequestDuration.WithLabelValues(r.resource, r.method).Observe(elapsed.Seconds())
	if err != nil {
		RequestsTotal.WithLabelValues(r.resource, r.method, "network_error").Inc()
		c.log.Debug().Err(err).Str("method", r.method).Str("path", r.path).Dur("elapsed", elapsed).Msg("backend unreachable")
		return &NetworkError{Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	RequestsTotal.WithLabelValues(r.resource, r.method, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug().Str("method", r.method).Str("path", r.path).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestFailedError{
			Op:      r.op,
			Status:  resp.StatusCode,
			Message: errorMessage(resp.Body, r.fallback),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: decode response: %w", r.op, err)
	}
	return nil
}

// errorMessage extracts {"message": "..."} from an error body.
func errorMessage(body io.Reader, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	b, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || json.Unmarshal(b, &payload) != nil || strings.TrimSpace(payload.Message) == "" {
		return fallback
	}
	return payload.Message
}

func requireID(id domain.ID) error {
	if id == "" {
		return domain.NewValidationError("id", "id is required")
	}
	return nil
}

func itemPath(collection string, id domain.ID) string {
	return "/" + collection + "/" + url.PathEscape(id.String())
}

func queryOf(pairs ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q.Set(pairs[i], pairs[i+1])
		}
	}
	return q
}
