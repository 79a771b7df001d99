package capture

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultFetchTimeout = 10 * time.Second

// Fetcher retrieves playlist and subtitle text with the request headers of
// the original capture, so protected CDNs serve us the same content they
// served the page.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{
		client:  &http.Client{},
		timeout: timeout,
	}
}

// Text fetches a URL and returns its body as a string. The configured
// timeout covers the whole fetch including the body read.
func (f *Fetcher) Text(ctx context.Context, rawURL string, headers map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	body, _, err := f.do(ctx, rawURL, headers)
	if err != nil {
		return "", err
	}
	defer body.Close()

	b, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rawURL, err)
	}
	return string(b), nil
}

// Open fetches a URL and hands back the response body stream along with
// its declared length. The timeout bounds connecting and receiving
// response headers only; once the stream is open the body reads on the
// caller's context, so long downloads are not cut off. The caller owns
// closing the body.
func (f *Fetcher) Open(ctx context.Context, rawURL string, headers map[string]string) (io.ReadCloser, int64, error) {
	ctx, cancel := context.WithCancel(ctx)

	timer := time.AfterFunc(f.timeout, cancel)
	body, length, err := f.do(ctx, rawURL, headers)
	timer.Stop()

	if err != nil {
		cancel()
		return nil, 0, err
	}

	return &cancelReadCloser{ReadCloser: body, cancel: cancel}, length, nil
}

func (f *Fetcher) do(ctx context.Context, rawURL string, headers map[string]string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("fetching %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	return resp.Body, resp.ContentLength, nil
}

// cancelReadCloser ties the request context to the body's lifetime.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	c.cancel()
	return c.ReadCloser.Close()
}
