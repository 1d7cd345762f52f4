// Package config provides configuration management for zanmei-downloader.
//
// Settings are resolved in layers, later layers winning:
//
//  1. Default() values
//  2. a JSON config file (explicit -config path, or the per-user
//     location from DefaultPath())
//  3. ZANMEI_* environment variables (ZANMEI_RETRIES, ZANMEI_OUTPUT_DIR, ...)
//  4. command-line flags, applied by the caller after Load
//
// # Loading
//
//	settings, err := config.Load("") // default location, may be absent
//	settings, err = config.Load("/etc/zanmei/config.json") // must exist
//
// # Saving
//
//	settings.OutputDir = "/music/hymns"
//	err := settings.Save(config.DefaultPath())
//
// # Options
//
// Settings covers the download protocol (timeout, retries, backup
// domains, delay, overwrite, limit), filename handling (renumber),
// post-processing (tags, playlist, cover art) and logging (file, level).
package config
