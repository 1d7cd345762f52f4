// Package progress defines the event stream the batch orchestrator
// produces and the sinks that consume it.
//
// Events form a strict sequence per batch: one album_start, then for
// each song a song_start, zero or more song_progress, and exactly one
// song_complete, then one album_complete. A resolution failure emits a
// single error event instead. No event for song N+1 appears before
// song_complete of song N.
//
// # Consuming
//
// The CLI serializes events to stderr in the marker format a
// supervising GUI scans for:
//
//	sink := progress.NewMarkerSink(os.Stderr)
//	// >>>PROGRESS:{"type":"song_start","index":1,"total":12,"title":"第1首 圣哉三一歌"}
//
// The TUI receives the same events over a channel:
//
//	ch := make(progress.ChanSink, 64)
//	go run(manager, ch)
//	for ev := range ch { ... }
//
// Several consumers can observe one batch via Multi:
//
//	sink := progress.Multi(markerSink, progress.SinkFunc(printHuman))
package progress
