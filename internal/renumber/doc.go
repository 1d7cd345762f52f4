// Package renumber retrofits ordinal prefixes onto already-downloaded
// albums.
//
// Songs downloaded without the renumber option sort by title, not by
// track order. Run walks the .mp3 files of one directory, reads the
// track marker out of each name (e.g. "第12首") and renames the file
// with a zero-padded prefix wide enough for the whole directory:
//
//	r := renumber.New(afero.NewOsFs(), log)
//	report, err := r.Run("./downloads")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("renamed %d of %d\n", report.Renamed, report.Total)
//
// Files without a marker are left alone and counted as skipped.
package renumber
