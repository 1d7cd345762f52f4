package audio

import (
	"strconv"

	"github.com/bogem/id3v2"

	"github.com/chhsiching/zanmei-downloader/internal/model"
)

// Tagger writes ID3 tags to downloaded MP3 files.
//
// The site serves untagged files, so players show only the raw
// filename. Tagger fills in the frames the page data can supply:
//   - Title (TIT2) from the song title
//   - Album (TALB) from the album title
//   - Track number (TRCK) from the hymn number
//   - Cover art (APIC) when artwork bytes are provided
//
// Artist frames are left untouched: hymn pages carry no artist
// information and guessing one would be worse than leaving the frame
// empty.
//
// Example:
//
//	tagger := NewTagger()
//	if err := tagger.SaveTags(path, song, album, artwork); err != nil {
//	    log.Printf("Failed to tag %s: %v", path, err)
//	}
type Tagger struct{}

// NewTagger creates a Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// SaveTags writes ID3 tags to the MP3 file at path.
//
// Existing tags are parsed first so frames this tool does not manage
// survive. Files without a tag get a fresh one. Pass nil artwork to
// leave any existing cover untouched.
func (t *Tagger) SaveTags(path string, song model.Song, album *model.Album, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.SetTitle(song.Title)
	tag.SetAlbum(album.Title)
	if n := song.TrackNumber(); n > 0 {
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, strconv.Itoa(n))
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateArtwork replaces any existing cover with a front-cover APIC frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
