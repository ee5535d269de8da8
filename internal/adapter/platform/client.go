// Package platform contains the outbound adapters that search individual
// social platforms and normalise their answers into domain.Creator records.
//
// Every adapter follows the same contract: Search never returns an error.
// Failures are logged with a "platform" attribute and degrade to an empty
// result so one broken upstream cannot fail a whole search.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	searchTimeout = 10 * time.Second
	detailTimeout = 5 * time.Second

	// DefaultMaxResults caps the number of records a single adapter returns.
	DefaultMaxResults = 20
)

// statusError reports a non-2xx answer from an upstream.
type statusError struct {
	url  string
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.url, e.code)
}

func (e *statusError) Unwrap() error { return port.ErrUpstream }

// do sends req with its own timeout and checks the status code. The caller
// owns closing the returned body; cancel must be called after reading it.
func do(ctx context.Context, client *http.Client, method, url string, body io.Reader, header http.Header, timeout time.Duration) (*http.Response, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := client.Do(req)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("%w: %w", port.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		cancel()
		return nil, nil, &statusError{url: url, code: resp.StatusCode}
	}
	return resp, cancel, nil
}

// fetchJSON performs a request and decodes a JSON body into out.
func fetchJSON(ctx context.Context, client *http.Client, method, url string, body io.Reader, header http.Header, timeout time.Duration, out any) error {
	resp, cancel, err := do(ctx, client, method, url, body, header, timeout)
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// fetchDocument performs a GET and parses the body as HTML.
func fetchDocument(ctx context.Context, client *http.Client, url string, header http.Header, timeout time.Duration) (*goquery.Document, error) {
	resp, cancel, err := do(ctx, client, http.MethodGet, url, nil, header, timeout)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

// degrade logs an adapter failure and returns the empty result.
func degrade(logger *slog.Logger, p domain.Platform, err error) []domain.Creator {
	logger.Warn("platform search failed", slog.String("platform", string(p)), slog.Any("error", err))
	return nil
}

func capResults(maxResults int) int {
	if maxResults <= 0 {
		return DefaultMaxResults
	}
	return maxResults
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
