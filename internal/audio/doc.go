// Package audio post-processes downloaded MP3 files: ID3 tag writing
// and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write title, album, track number, and cover art:
//
//	tagger := audio.NewTagger()
//	err := tagger.SaveTags(path, song, album, artworkBytes)
//
// # Playlist Generation
//
// BuildM3U renders an extended M3U playlist for the files an album run
// produced:
//
//	content := audio.BuildM3U(album.Title, entries)
//	afero.WriteFile(fs, filepath.Join(dir, audio.M3UFilename(album.Title)), []byte(content), 0o644)
//
// Durations are unknown to this tool, so EXTINF lines carry -1.
package audio
