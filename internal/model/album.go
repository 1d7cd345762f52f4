package model

// Album represents one collection of songs extracted from an album page.
//
// The song order is significant: it drives numbering and display
// sequence for the whole batch. An Album is owned by the batch
// orchestrator for the duration of a run and is not shared.
//
// Example:
//
//	album := model.NewAlbum("赞美诗选", "https://www.izanmei.cc/album/hymns-1.html", "izanmei.cc")
//	album.Songs = append(album.Songs, model.NewSong("16875", "第1首 圣哉三一歌", mp3URL))
type Album struct {
	// Title is the album display title.
	Title string

	// URL is the album page the songs were extracted from.
	URL string

	// Source names the originating site (e.g. "izanmei.cc").
	Source string

	// ArtworkURL is the cover image location, if the page exposes one.
	// Empty string means no artwork is available.
	ArtworkURL string

	// Songs holds the album's songs in display order.
	Songs []Song
}

// NewAlbum creates an empty Album with the given identity fields.
func NewAlbum(title, url, source string) *Album {
	return &Album{
		Title:  title,
		URL:    url,
		Source: source,
	}
}

// HasArtwork returns true if the album page exposed a cover image.
func (a *Album) HasArtwork() bool {
	return a.ArtworkURL != ""
}

// Head returns the first n songs, or all songs when n <= 0 or n exceeds
// the album length. The limit is a prefix of the adapter's order, never
// a sample.
func (a *Album) Head(n int) []Song {
	if n <= 0 || n >= len(a.Songs) {
		return a.Songs
	}
	return a.Songs[:n]
}
