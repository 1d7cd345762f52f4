package renumber

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/chhsiching/zanmei-downloader/internal/fname"
	"github.com/chhsiching/zanmei-downloader/internal/logger"
)

// Report counts the outcomes of one renumbering run.
type Report struct {
	// Renamed is the number of files that received a prefix.
	Renamed int

	// Skipped counts files without a track marker and files whose
	// name would not change.
	Skipped int

	// Total is the number of .mp3 files found. It is also the
	// padding basis for the prefixes.
	Total int
}

// Renumberer prepends zero-padded ordinal prefixes to the .mp3 files
// of a directory so lexicographic order matches track order.
type Renumberer struct {
	fs  afero.Fs
	log *logger.Logger
}

// New creates a Renumberer on the given filesystem.
func New(fs afero.Fs, log *logger.Logger) *Renumberer {
	return &Renumberer{fs: fs, log: log}
}

// Run renumbers every .mp3 file directly inside dir, without
// recursion. Files whose name carries no track marker are skipped. A
// missing or non-directory path is an error; a failed rename is logged
// and the run continues with the next file.
func (r *Renumberer) Run(dir string) (*Report, error) {
	info, err := r.fs.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	matches, err := afero.Glob(r.fs, filepath.Join(dir, "*.mp3"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	sort.Strings(matches)

	report := &Report{Total: len(matches)}
	if report.Total == 0 {
		r.log.Info("No MP3 files found in %s", dir)
		return report, nil
	}
	r.log.Info("Found %d files in %s", report.Total, dir)

	for _, path := range matches {
		name := filepath.Base(path)

		n, ok := fname.ExtractTrackNumber(name)
		if !ok {
			r.log.Info("Skip: %s (no track number)", name)
			report.Skipped++
			continue
		}

		// TODO: skip names that already carry an ordinal prefix so a
		// second run does not stack another one.
		newName := fname.TrackNumberPrefix(name, n, report.Total)
		if newName == name {
			r.log.Info("Skip: %s (already has prefix)", name)
			report.Skipped++
			continue
		}

		if err := r.fs.Rename(path, filepath.Join(dir, newName)); err != nil {
			r.log.Error("Failed to rename %s: %v", name, err)
			continue
		}
		r.log.Info("Renamed: %s -> %s", name, newName)
		report.Renamed++
	}

	return report, nil
}
