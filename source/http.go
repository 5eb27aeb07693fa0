// Package source provides retrieval collaborators for spec files, over HTTP
// or from a local checkout.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound reports that a named spec file could not be retrieved.
var ErrNotFound = errors.New("spec file not found")

// specExt is appended to a spec name to form its file name.
const specExt = ".spec"

// defaultMaxContentSize caps a fetched spec file at 8 MB.
const defaultMaxContentSize int64 = 8 << 20

// HTTPFetcher retrieves spec files from a base URL. A name maps to
// <baseURL><name>.spec.
type HTTPFetcher struct {
	baseURL        string
	client         *http.Client
	maxContentSize int64
}

// NewHTTPFetcher creates a fetcher for the given base URL. The base URL
// should end with a path separator; names are appended verbatim.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		maxContentSize: defaultMaxContentSize,
	}
}

// Fetch retrieves the named spec file. Any non-200 status is a hard failure
// wrapping ErrNotFound, so a build aborts rather than producing partial
// output.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := f.baseURL + name + specExt

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s (HTTP %d)", ErrNotFound, url, resp.StatusCode)
	}

	limitReader := io.LimitReader(resp.Body, f.maxContentSize+1)
	body, err := io.ReadAll(limitReader)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}
	if int64(len(body)) > f.maxContentSize {
		return nil, fmt.Errorf("spec file %s too large (exceeds %d bytes)", url, f.maxContentSize)
	}

	return body, nil
}
