package audio

import (
	"fmt"
	"strings"

	"github.com/chhsiching/zanmei-downloader/internal/fname"
)

// PlaylistEntry is one line pair in a playlist: the display title and
// the filename relative to the album directory.
type PlaylistEntry struct {
	Title string
	File  string
}

// BuildM3U renders an extended M3U playlist for the given entries.
//
// The site exposes no durations, so every EXTINF length is -1 (the
// extended M3U marker for unknown). File references are bare filenames:
// the playlist is written next to the MP3s it lists.
//
// Example output:
//
//	#EXTM3U
//	#PLAYLIST:新编赞美诗442首(001-100)
//	#EXTINF:-1,第1首 圣哉三一歌
//	1_第1首 圣哉三一歌.mp3
func BuildM3U(title string, entries []PlaylistEntry) string {
	var sb strings.Builder

	sb.WriteString("#EXTM3U\n")
	if title != "" {
		sb.WriteString(fmt.Sprintf("#PLAYLIST:%s\n", title))
	}
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", e.Title))
		sb.WriteString(e.File + "\n")
	}

	return sb.String()
}

// M3UFilename returns the playlist filename for an album title, with
// filesystem-hostile characters replaced.
func M3UFilename(albumTitle string) string {
	return fname.Sanitize(albumTitle) + ".m3u"
}
