package fname

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	// reservedChars are illegal in Windows filenames and unsafe enough
	// everywhere else to normalize away.
	reservedChars = regexp.MustCompile(`[\\/:*?"<>|]`)

	// trackMarker matches the positional marker izanmei embeds in song
	// titles, e.g. "第12首".
	trackMarker = regexp.MustCompile(`第(\d+)首`)
)

// Sanitize replaces filesystem-reserved characters with underscores and
// trims surrounding whitespace. It never fails and is idempotent.
//
// Example:
//
//	fname.Sanitize(`第1首 圣哉/三一歌?.mp3`) // "第1首 圣哉_三一歌_.mp3"
func Sanitize(name string) string {
	return strings.TrimSpace(reservedChars.ReplaceAllString(name, "_"))
}

// FixMojibake reverses the corruption produced when UTF-8 bytes are
// mis-decoded as Latin-1: it re-encodes the string's code points as
// Latin-1 to recover the original bytes, then reinterprets those bytes
// as UTF-8. If the string has code points outside Latin-1, or the
// recovered bytes are not valid UTF-8, the input is returned unchanged.
//
// Example:
//
//	fname.FixMojibake("Ã©.mp3") // "é.mp3"
//	fname.FixMojibake("已经正确.mp3") // unchanged
func FixMojibake(name string) string {
	raw, err := charmap.ISO8859_1.NewEncoder().String(name)
	if err != nil {
		return name
	}
	if !utf8.ValidString(raw) {
		return name
	}
	return raw
}

// ExtractTrackNumber pulls the track number out of the positional
// marker in name (e.g. "第7首 ..." yields 7). The second return value
// is false when no marker is present.
func ExtractTrackNumber(name string) (int, bool) {
	m := trackMarker.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// TrackNumberPrefix prepends a zero-padded ordinal so lexicographic
// order matches track order. When trackNumber <= 0 the number is
// extracted from the marker in name; a name without a marker is
// returned unchanged. Padding width grows with the collection size:
// one digit below 10 songs, two below 100, three otherwise.
//
// The marker survives in the output, so applying this to an
// already-prefixed name stacks a second prefix. Callers must apply it
// once per name.
//
// Example:
//
//	fname.TrackNumberPrefix("第7首 x.mp3", 0, 9)   // "7_第7首 x.mp3"
//	fname.TrackNumberPrefix("第7首 x.mp3", 0, 50)  // "07_第7首 x.mp3"
//	fname.TrackNumberPrefix("第7首 x.mp3", 0, 150) // "007_第7首 x.mp3"
func TrackNumberPrefix(name string, trackNumber, total int) string {
	if trackNumber <= 0 {
		n, ok := ExtractTrackNumber(name)
		if !ok {
			return name
		}
		trackNumber = n
	}

	width := 1
	switch {
	case total < 10:
		width = 1
	case total < 100:
		width = 2
	default:
		width = 3
	}

	return fmt.Sprintf("%0*d_%s", width, trackNumber, name)
}

// FromHeaders resolves the output filename for one song.
//
// Priority order:
//  1. the caller's title (it carries the authoritative track marker),
//     sanitized, with ".mp3" appended;
//  2. the Content-Disposition header filename, in either the quoted or
//     the RFC 2231/5987 extended form, percent-decoded when it still
//     carries escapes, with mojibake repaired;
//  3. the song ID with ".mp3" appended;
//  4. the literal "unknown.mp3".
func FromHeaders(h http.Header, id, title string) string {
	if title != "" {
		return Sanitize(title) + ".mp3"
	}

	if cd := h.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				if strings.Contains(name, "%") {
					if decoded, err := url.QueryUnescape(name); err == nil {
						name = decoded
					}
				}
				return FixMojibake(name)
			}
		}
	}

	if id != "" {
		return id + ".mp3"
	}
	return "unknown.mp3"
}
