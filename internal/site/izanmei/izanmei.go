package izanmei

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chhsiching/zanmei-downloader/internal/model"
	"github.com/chhsiching/zanmei-downloader/internal/site"
)

// ErrNoSongs is returned when an album page contains no recognizable
// song links.
//
// This typically occurs when:
//   - The URL points to a non-album page (search results, index)
//   - The page layout has changed unexpectedly
var ErrNoSongs = errors.New("no songs found on page")

// audioBase is the host serving the actual MP3 files. Song pages on
// izanmei.cc embed players that stream from this address.
const audioBase = "https://play.xiaoh.ai/song/p"

var (
	// Track numbers live in table cells like:
	//
	//	<td class="i" style='width:58px;'>第101首</td>
	//
	// The cell content may span lines, hence (?s).
	trackCell = regexp.MustCompile(`(?s)<td\s+class="i"[^>]*>.*?第(\d+)首`)

	// Song links look like:
	//
	//	<a href="/song/16975.html">圣哉三一歌</a>
	songAnchor = regexp.MustCompile(`<a\s+href="/song/(\d+)\.html"[^>]*>([^<]+)</a>`)

	// Loose variant for older page layouts where the title is not the
	// sole child of the anchor.
	songHref = regexp.MustCompile(`href="/song/(\d+)\.html"[^>]*>([^<]+)`)

	pageTitle = regexp.MustCompile(`<h1[^>]*>([^<]+)</h1>`)
	ogImage   = regexp.MustCompile(`<meta\s+property="og:image"\s+content="([^"]+)"`)
)

// Adapter extracts albums from 爱赞美网 (izanmei.cc).
//
// Album pages list songs in a table, one row per song, with the hymn
// number in a dedicated cell and the title inside a link to the song
// page. The audio itself is served from a separate host; the adapter
// derives each MP3 URL from the song page id.
//
// Example usage:
//
//	adapter := izanmei.New()
//
//	resp, _ := http.Get("https://www.izanmei.cc/album/hymns-442-1.html")
//	html, _ := io.ReadAll(resp.Body)
//
//	album, err := adapter.ExtractAlbum(string(html))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, song := range album.Songs {
//	    fmt.Println(song.Title, song.URL)
//	}
type Adapter struct{}

var _ site.Adapter = (*Adapter)(nil)

// New creates an izanmei.cc adapter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the site label.
func (a *Adapter) Name() string {
	return "izanmei.cc"
}

// CanHandle reports whether the URL belongs to izanmei.cc.
func (a *Adapter) CanHandle(url string) bool {
	return strings.Contains(url, "izanmei.cc")
}

// ExtractAlbum parses an izanmei.cc album page.
//
// This method extracts:
//   - The album title from the page heading (falls back to 未知专辑)
//   - Hymn numbers from the numbered table cells
//   - Song ids and titles from the song page links
//   - Cover artwork from the og:image meta tag, when present
//
// Hymn numbers and song links are matched positionally: the page lays
// them out one row per song, so the nth cell belongs to the nth link.
// When the page carries no numbered cells at all, songs are numbered
// sequentially from 1 in page order.
//
// Each song title is prefixed with its hymn marker (e.g. "第101首 …"),
// keeping the number exactly as printed on the page. The audio URL is
// derived from the song id.
//
// Returns ErrNoSongs if no song links can be found.
func (a *Adapter) ExtractAlbum(html string) (*model.Album, error) {
	album := model.NewAlbum(extractTitle(html), "", a.Name())
	if m := ogImage.FindStringSubmatch(html); m != nil {
		album.ArtworkURL = m[1]
	}

	entries := extractEntries(html)
	if len(entries) == 0 {
		return nil, ErrNoSongs
	}

	for _, e := range entries {
		song := model.NewSong(e.id, fmt.Sprintf("第%s首 %s", e.track, e.title), audioURL(e.id))
		song.Metadata["source"] = a.Name()
		song.Metadata["track_number"] = e.track
		album.Songs = append(album.Songs, song)
	}
	return album, nil
}

type entry struct {
	track string
	id    string
	title string
}

// extractEntries pairs hymn numbers with song links in page order.
//
// When the numbered cells are missing (older layouts), it falls back to
// a looser link match and numbers the songs sequentially.
func extractEntries(html string) []entry {
	tracks := trackCell.FindAllStringSubmatch(html, -1)
	songs := songAnchor.FindAllStringSubmatch(html, -1)

	if len(tracks) > 0 && len(songs) > 0 {
		n := len(tracks)
		if len(songs) < n {
			n = len(songs)
		}
		entries := make([]entry, 0, n)
		for i := 0; i < n; i++ {
			entries = append(entries, entry{
				track: tracks[i][1],
				id:    songs[i][1],
				title: strings.TrimSpace(songs[i][2]),
			})
		}
		return entries
	}

	// Fallback: no numbered cells. Number songs by page position.
	matches := songHref.FindAllStringSubmatch(html, -1)
	entries := make([]entry, 0, len(matches))
	for i, m := range matches {
		entries = append(entries, entry{
			track: strconv.Itoa(i + 1),
			id:    m[1],
			title: strings.TrimSpace(m[2]),
		})
	}
	return entries
}

// extractTitle returns the page heading, or 未知专辑 when the page has
// no <h1>.
func extractTitle(html string) string {
	if m := pageTitle.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "未知专辑"
}

// audioURL derives the MP3 location from a song page id.
func audioURL(id string) string {
	return fmt.Sprintf("%s/%s.mp3", audioBase, id)
}
