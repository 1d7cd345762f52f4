// Package fname implements the filename policy for downloaded songs.
//
// All functions are pure and total: they never fail, never touch the
// filesystem, and always return a usable name.
//
// # Sanitizing
//
// Sanitize strips the characters that are reserved on common
// filesystems, replacing each with an underscore:
//
//	fname.Sanitize(`a/b:c?.mp3`) // "a_b_c_.mp3"
//
// # Mojibake repair
//
// Servers occasionally declare UTF-8 header bytes as Latin-1, which
// turns names like "圣哉三一歌" into "å£...". FixMojibake reverses
// that specific corruption and leaves everything else alone.
//
// # Ordinal prefixes
//
// Song titles on izanmei carry a positional marker ("第3首"). The marker
// does not sort correctly as a string ("第10首" < "第2首"), so
// TrackNumberPrefix prepends a zero-padded ordinal wide enough for the
// collection:
//
//	fname.TrackNumberPrefix("第3首 奇异恩典.mp3", 0, 42) // "03_第3首 奇异恩典.mp3"
package fname
