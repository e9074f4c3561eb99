package source

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/drodenkirchen/rio/pkg/errors"
	"github.com/drodenkirchen/rio/pkg/layouter"
	"github.com/drodenkirchen/rio/pkg/observability"
)

// DebugLayoutPath is the well-known path a rendering client exposes its
// measured layout snapshot under.
const DebugLayoutPath = "/debug/layout"

// retryableError marks a fetch failure as transient. Only failures
// wrapped with it are retried; a 404 or a malformed body never is.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// HTTP pulls the snapshot from a running rendering client. Transient
// failures (connection errors, 5xx responses) are retried with
// exponential backoff; everything else fails immediately.
type HTTP struct {
	base     string
	client   *http.Client
	attempts int
	delay    time.Duration
}

// HTTPOption configures an [HTTP] source.
type HTTPOption func(*HTTP)

// WithClient replaces the underlying http.Client.
func WithClient(c *http.Client) HTTPOption {
	return func(h *HTTP) { h.client = c }
}

// WithRetry sets the retry budget: attempts tries in total, starting with
// delay between them and doubling after each failure.
func WithRetry(attempts int, delay time.Duration) HTTPOption {
	return func(h *HTTP) { h.attempts = attempts; h.delay = delay }
}

// NewHTTP creates an HTTP source for the client at base, e.g.
// "http://localhost:8000". The defaults are 3 attempts with one second
// initial backoff and a 10 second request timeout.
func NewHTTP(base string, opts ...HTTPOption) (*HTTP, error) {
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, errors.New(errors.ErrCodeInvalidInput, "client base URL %q must be http(s)", base)
	}

	h := &HTTP{
		base:     strings.TrimRight(base, "/"),
		client:   &http.Client{Timeout: 10 * time.Second},
		attempts: 3,
		delay:    time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Fetch performs the GET with retries and decodes the snapshot.
func (h *HTTP) Fetch(ctx context.Context) (*layouter.Snapshot, error) {
	logger := log.FromContext(ctx)
	endpoint := h.base + DebugLayoutPath

	start := time.Now()
	observability.Fetch().OnFetchStart(ctx, endpoint)

	var snap *layouter.Snapshot
	delay := h.delay
	var lastErr error

	for attempt := 1; attempt <= max(h.attempts, 1); attempt++ {
		var err error
		snap, err = h.fetchOnce(ctx, endpoint)
		if err == nil {
			observability.Fetch().OnFetchComplete(ctx, endpoint, attempt, time.Since(start), nil)
			return snap, nil
		}

		lastErr = err
		if !stderrors.As(err, new(*retryableError)) {
			observability.Fetch().OnFetchComplete(ctx, endpoint, attempt, time.Since(start), err)
			return nil, err
		}
		logger.Debug("snapshot fetch failed", "attempt", attempt, "err", err)

		if attempt < h.attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	observability.Fetch().OnFetchComplete(ctx, endpoint, h.attempts, time.Since(start), lastErr)
	return nil, errors.Wrap(errors.ErrCodeNetwork, lastErr, "fetch %s", endpoint)
}

func (h *HTTP) fetchOnce(ctx context.Context, endpoint string) (*layouter.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &retryableError{err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, &retryableError{err: fmt.Errorf("client returned %s", resp.Status)}
	case resp.StatusCode != http.StatusOK:
		return nil, errors.New(errors.ErrCodeNetwork, "client returned %s for %s", resp.Status, endpoint)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &retryableError{err: err}
	}
	return DecodeSnapshot(data)
}
