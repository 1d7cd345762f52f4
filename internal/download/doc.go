// Package download materializes songs to disk: the Engine handles one
// song with retries and failover, the Manager sequences a whole album.
//
// # Engine
//
// The Engine runs a fixed protocol per song. The candidate list is the
// primary URL followed by its backup URLs; each candidate gets up to
// Retries attempts with exponential backoff (2^attempt seconds) in
// between. When one candidate's attempts are spent the next one is
// tried; when the last one is spent the song fails. Bodies stream to
// disk in 8 KiB chunks; a stream shorter than the declared
// Content-Length is deleted and retried like any transport fault, so
// no partial file ever survives an attempt.
//
// Exactly one of success, skipped or failed comes back per song:
//
//	result := engine.Download(ctx, download.Request{
//	    URL:       song.URL,
//	    OutputDir: "./downloads",
//	    ID:        song.ID,
//	    Title:     song.Title,
//	    Retries:   3,
//	})
//
// # Manager
//
// The Manager resolves an album page through the site registry and
// feeds each song to the Engine, strictly in order, one at a time,
// with a politeness pause in between:
//
//	manager := download.NewManager(settings, client, registry, sink, log)
//	summary, err := manager.DownloadAlbum(ctx, albumURL)
//
// Per-song failures are folded into the summary and never abort the
// batch. Only two things end a batch early: a resolution failure
// (before any download starts) and context cancellation.
//
// # Progress Reporting
//
// The Manager emits progress.Event values in strict order: album_start,
// then per song a song_start, optional song_progress steps and one
// song_complete, then album_complete. Consumers never see events for
// song N+1 before song N completed.
//
// # Failure Classes
//
// ErrTransport and ErrIncomplete mark an attempt as retryable. Any
// other fault (a directory that cannot be created, a failing disk)
// fails the song immediately without touching the remaining candidate
// URLs.
package download
