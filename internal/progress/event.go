package progress

import "encoding/json"

// Kind discriminates progress events. The string values are the wire
// names consumers match on; they never change.
type Kind string

const (
	KindAlbumStart    Kind = "album_start"
	KindSongStart     Kind = "song_start"
	KindSongProgress  Kind = "song_progress"
	KindSongComplete  Kind = "song_complete"
	KindAlbumComplete Kind = "album_complete"
	KindError         Kind = "error"
)

// Event is one progress notification from the batch orchestrator.
//
// Only the fields relevant to the Kind are populated; MarshalJSON
// writes exactly the per-kind field set so the wire format stays
// stable. Index is 1-based.
type Event struct {
	Kind    Kind
	Title   string
	Source  string
	Index   int
	Total   int
	Percent int
	Status  string
	Size    int64
	Message string
	Success int
	Failed  int
	Skipped int
}

// AlbumStart announces a batch: album title, source site and the
// number of songs that will be attempted.
func AlbumStart(title, source string, total int) Event {
	return Event{Kind: KindAlbumStart, Title: title, Source: source, Total: total}
}

// SongStart announces song index (1-based) of total.
func SongStart(index, total int, title string) Event {
	return Event{Kind: KindSongStart, Index: index, Total: total, Title: title}
}

// SongProgress reports the download percentage of the current song.
func SongProgress(index, percent int) Event {
	return Event{Kind: KindSongProgress, Index: index, Percent: percent}
}

// SongComplete reports the terminal outcome of one song.
func SongComplete(index int, title, status string, size int64, message string) Event {
	return Event{Kind: KindSongComplete, Index: index, Title: title, Status: status, Size: size, Message: message}
}

// AlbumComplete reports the final counters of the batch.
func AlbumComplete(success, failed, skipped, total int) Event {
	return Event{Kind: KindAlbumComplete, Success: success, Failed: failed, Skipped: skipped, Total: total}
}

// ErrorEvent reports a batch-level failure, e.g. the album page could
// not be resolved.
func ErrorEvent(message string) Event {
	return Event{Kind: KindError, Message: message}
}

// MarshalJSON emits the exact field set for the event's kind.
func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case KindAlbumStart:
		return json.Marshal(struct {
			Type   string `json:"type"`
			Title  string `json:"title"`
			Source string `json:"source"`
			Total  int    `json:"total"`
		}{string(e.Kind), e.Title, e.Source, e.Total})
	case KindSongStart:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Index int    `json:"index"`
			Total int    `json:"total"`
			Title string `json:"title"`
		}{string(e.Kind), e.Index, e.Total, e.Title})
	case KindSongProgress:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Index   int    `json:"index"`
			Percent int    `json:"percent"`
		}{string(e.Kind), e.Index, e.Percent})
	case KindSongComplete:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Index   int    `json:"index"`
			Title   string `json:"title"`
			Status  string `json:"status"`
			Size    int64  `json:"size"`
			Message string `json:"message"`
		}{string(e.Kind), e.Index, e.Title, e.Status, e.Size, e.Message})
	case KindAlbumComplete:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Success int    `json:"success"`
			Failed  int    `json:"failed"`
			Skipped int    `json:"skipped"`
			Total   int    `json:"total"`
		}{string(e.Kind), e.Success, e.Failed, e.Skipped, e.Total})
	default:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}{string(KindError), e.Message})
	}
}
