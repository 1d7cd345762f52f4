package model

import "strconv"

// Song represents a single downloadable song within an album.
//
// Songs are created by a site adapter and consumed read-only by the
// download engine. Identity is the ID: two songs with the same ID refer
// to the same resource regardless of title or URL. Treat Song values as
// immutable after creation.
//
// Example:
//
//	song := model.NewSong("16875", "第1首 圣哉三一歌", "https://play.xiaoh.ai/song/p/16875.mp3")
//	song.Metadata["track_number"] = "1"
//	fmt.Println(song.TrackNumber()) // 1
type Song struct {
	// ID is the site-assigned identifier for this song.
	ID string

	// Title is the display title, usually carrying the track marker
	// (e.g. "第3首 奇异恩典").
	Title string

	// URL is the primary audio file location.
	URL string

	// Metadata holds adapter-specific string pairs. Keys used by this
	// project: "source", "track_number".
	Metadata map[string]string
}

// NewSong creates a Song with an initialized metadata map.
func NewSong(id, title, url string) Song {
	return Song{
		ID:       id,
		Title:    title,
		URL:      url,
		Metadata: make(map[string]string),
	}
}

// Same reports whether two songs denote the same resource (equal IDs).
func (s Song) Same(other Song) bool {
	return s.ID == other.ID
}

// TrackNumber returns the track number recorded by the adapter,
// or 0 when absent or unparsable.
func (s Song) TrackNumber() int {
	n, err := strconv.Atoi(s.Metadata["track_number"])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
