package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations shared by the page fetcher, the cover
// art fetch and the download engine.
//
// Client provides:
//   - a configured User-Agent header
//   - a per-request timeout
//   - whole-body fetches for pages and images
//   - streamed responses for large audio files
//
// Example usage:
//
//	client := NewClient(60*time.Second, "zanmei-downloader/1.0")
//
//	// Fetch an album page
//	html, err := client.GetString(ctx, "https://www.izanmei.cc/album/hymns-442-1.html")
//
//	// Stream an audio file
//	resp, err := client.Stream(ctx, mp3URL)
//	defer resp.Body.Close()
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client with the given request timeout and
// User-Agent header value.
func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// ProgressWriter wraps a writer to track download progress.
//
// OnUpdate receives the running byte count after every write. Err
// records the first failure of the underlying writer so a caller of
// io.Copy can tell a local write fault from a network read fault.
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: file,
//	    Total:  resp.ContentLength,
//	    OnUpdate: func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    },
//	}
//	io.Copy(pw, resp.Body)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// Err is the first error returned by Writer, if any.
	Err error

	// OnUpdate is called after each Write with current progress.
	// Parameters are (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if err != nil && pw.Err == nil {
		pw.Err = err
	}
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if the request fails, the response status is not
// 200 OK, or reading the body fails.
//
// Example:
//
//	data, err := client.Get(ctx, "https://example.com/cover.jpg")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.Stream(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching text content like HTML.
//
// Example:
//
//	html, err := client.GetString(ctx, "https://www.izanmei.cc/album/hymns-442-1.html")
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Stream performs a GET request and returns the raw response with the
// body left open, so callers can inspect headers before deciding
// whether to consume the body. The caller owns resp.Body and must
// close it. A non-200 status is returned as an error with the body
// already closed.
func (c *Client) Stream(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return resp, nil
}
