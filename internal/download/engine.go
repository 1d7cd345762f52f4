package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/chhsiching/zanmei-downloader/internal/fname"
	xhttp "github.com/chhsiching/zanmei-downloader/internal/http"
	"github.com/chhsiching/zanmei-downloader/internal/logger"
	"github.com/chhsiching/zanmei-downloader/internal/model"
)

// copyChunkSize is the buffer size for streaming a body to disk.
const copyChunkSize = 8192

// cancelledMessage is the failure reason recorded when a download stops
// because the surrounding context was cancelled.
const cancelledMessage = "download cancelled"

// Streamer is the slice of the HTTP client the engine needs: a GET
// whose response comes back with headers parsed and the body unread.
type Streamer interface {
	Stream(ctx context.Context, url string) (*http.Response, error)
}

var _ Streamer = (*xhttp.Client)(nil)

// Request describes one song to materialize on disk.
type Request struct {
	// URL is the primary audio location.
	URL string

	// BackupURLs are alternate locations believed to serve the same
	// bytes, tried in order after the primary is exhausted.
	BackupURLs []string

	// OutputDir is the directory the file is written into. It is
	// created if missing.
	OutputDir string

	// ID and Title feed the filename resolution (see fname.FromHeaders).
	ID    string
	Title string

	// Retries is the number of attempts per candidate URL.
	Retries int

	// Overwrite replaces an existing file instead of skipping the song.
	Overwrite bool

	// Renumber prepends the zero-padded ordinal prefix to the filename.
	Renumber bool

	// Total is the album's full song count, used for prefix padding.
	Total int

	// OnProgress, when set, receives the download percentage in steps
	// of at least ten points. It is only called when the response
	// declares its length.
	OnProgress func(percent int)
}

// Engine materializes single songs to disk with bounded retries,
// exponential backoff and per-URL failover.
//
// The engine is stateless between calls and never runs two transfers
// concurrently for the same Request; callers own the sequencing.
type Engine struct {
	fs     afero.Fs
	client Streamer
	log    *logger.Logger

	// backoff is the base unit of the exponential retry pause
	// (2^attempt units). One second in production.
	backoff time.Duration
}

// NewEngine creates an Engine writing through fs and fetching through
// client.
func NewEngine(fs afero.Fs, client Streamer, log *logger.Logger) *Engine {
	return &Engine{
		fs:      fs,
		client:  client,
		log:     log,
		backoff: time.Second,
	}
}

// Download runs the full retry-and-failover protocol for one song and
// returns its single terminal result. The candidate list is the primary
// URL followed by the backup URLs, in order, fixed up front. Each
// candidate gets up to req.Retries attempts with 2^attempt pauses in
// between; when a candidate's attempts are spent the next one is tried.
// Transport and integrity faults move the protocol along; anything
// else (a directory that cannot be created, a disk write failure)
// fails the song on the spot.
//
// Cancellation is observed between attempts and during backoff pauses;
// a cancelled song fails with a cancellation reason.
func (e *Engine) Download(ctx context.Context, req Request) model.DownloadResult {
	if err := e.fs.MkdirAll(req.OutputDir, 0o755); err != nil {
		e.log.Error("Cannot create output directory %s: %v", req.OutputDir, err)
		return model.Failed(fmt.Sprintf("Error: %v", err))
	}

	urls := append([]string{req.URL}, req.BackupURLs...)

	var lastErr error
	for urlIdx, current := range urls {
		label := urlLabel(urlIdx)

		for attempt := 0; attempt < req.Retries; attempt++ {
			if ctx.Err() != nil {
				return model.Failed(cancelledMessage)
			}

			e.log.Debug("Attempting download: %s (%s, attempt %d/%d)",
				current, label, attempt+1, req.Retries)

			result, err := e.tryURL(ctx, current, label, req)
			if err == nil {
				return result
			}
			if !retryable(err) {
				e.log.Error("Unexpected error: %v", err)
				return model.Failed(fmt.Sprintf("Error: %v", err))
			}
			if ctx.Err() != nil {
				return model.Failed(cancelledMessage)
			}

			lastErr = err
			e.log.Warn("Request failed (%s, attempt %d): %v", label, attempt+1, err)

			lastAttempt := attempt == req.Retries-1
			lastURL := urlIdx == len(urls)-1

			if !lastAttempt {
				wait := time.Duration(1<<attempt) * e.backoff
				e.log.Info("Retrying in %s...", wait)
				select {
				case <-ctx.Done():
					return model.Failed(cancelledMessage)
				case <-time.After(wait):
				}
				continue
			}
			if !lastURL {
				e.log.Info("Trying next backup URL...")
				break
			}

			e.log.Error("Failed to download from all %d URLs after %d attempts each",
				len(urls), req.Retries)
			return model.Failed(fmt.Sprintf("Download failed: %v", lastErr))
		}
	}

	// Reachable only with zero retries per URL: no attempt ever ran.
	return model.Failed("Unknown error")
}

// tryURL performs a single attempt against one candidate URL. A nil
// error means the returned result is terminal (success or skip); a
// non-nil error is classified for the caller's retry decision.
func (e *Engine) tryURL(ctx context.Context, url, label string, req Request) (model.DownloadResult, error) {
	resp, err := e.client.Stream(ctx, url)
	if err != nil {
		return model.DownloadResult{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	filename := fname.Sanitize(fname.FromHeaders(resp.Header, req.ID, req.Title))
	if req.Renumber {
		filename = fname.TrackNumberPrefix(filename, 0, req.Total)
	}
	path := filepath.Join(req.OutputDir, filename)

	if !req.Overwrite {
		if exists, _ := afero.Exists(e.fs, path); exists {
			e.log.Info("File exists, skipping: %s", filename)
			return model.Skipped(path, "File already exists"), nil
		}
	}

	out, err := e.fs.Create(path)
	if err != nil {
		return model.DownloadResult{}, fmt.Errorf("create %s: %w", filename, err)
	}

	pw := &xhttp.ProgressWriter{Writer: out, Total: resp.ContentLength}
	if req.OnProgress != nil && resp.ContentLength > 0 {
		lastPercent := 0
		pw.OnUpdate = func(written, total int64) {
			percent := int(written * 100 / total)
			if percent-lastPercent >= 10 {
				req.OnProgress(percent)
				lastPercent = percent
			}
		}
	}

	written, copyErr := io.CopyBuffer(pw, resp.Body, make([]byte, copyChunkSize))
	closeErr := out.Close()

	switch {
	case copyErr != nil && pw.Err != nil:
		// The local writer failed; retrying would hit the same disk.
		e.remove(path)
		return model.DownloadResult{}, fmt.Errorf("write %s: %w", filename, pw.Err)
	case copyErr != nil:
		e.remove(path)
		return model.DownloadResult{}, fmt.Errorf("%w: %v", ErrTransport, copyErr)
	case closeErr != nil:
		e.remove(path)
		return model.DownloadResult{}, fmt.Errorf("close %s: %w", filename, closeErr)
	case resp.ContentLength > 0 && written != resp.ContentLength:
		e.remove(path)
		return model.DownloadResult{}, fmt.Errorf("%w: got %d of %d bytes",
			ErrIncomplete, written, resp.ContentLength)
	}

	e.log.Info("Downloaded successfully from %s: %s (%d bytes)", label, filename, written)
	return model.Succeeded(path, written, "Download successful from "+label), nil
}

// remove deletes a partial file left behind by a failed attempt.
func (e *Engine) remove(path string) {
	if err := e.fs.Remove(path); err != nil {
		e.log.Warn("Cannot remove partial file %s: %v", path, err)
	}
}

// urlLabel names a candidate URL for logs and result messages.
func urlLabel(idx int) string {
	if idx == 0 {
		return "primary"
	}
	return fmt.Sprintf("backup #%d", idx)
}
