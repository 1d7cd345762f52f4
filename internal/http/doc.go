// Package http provides the HTTP client shared by every network
// operation in zanmei-downloader.
//
// The Client in this package handles:
//   - User-Agent headers
//   - per-request timeouts
//   - whole-body fetches (album pages, cover images)
//   - streamed responses for the download engine
//
// # Basic Usage
//
//	client := http.NewClient(60*time.Second, "zanmei-downloader/1.0")
//
//	// Fetch HTML page
//	html, err := client.GetString(ctx, albumURL)
//
//	// Stream an audio file, headers first
//	resp, err := client.Stream(ctx, mp3URL)
//	if err == nil {
//	    defer resp.Body.Close()
//	    // inspect resp.Header, then copy resp.Body
//	}
//
// # Progress Tracking
//
// ProgressWriter wraps any io.Writer for progress tracking and records
// the first write-side error, so callers of io.Copy can distinguish a
// failing disk from a failing connection:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    resp.ContentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
