// Package cover prepares album artwork for saving and tag embedding.
//
// Album pages expose artwork in whatever size and format the site
// serves. Prepare normalizes that to a bounded JPEG so the same bytes
// can be written as cover.jpg and embedded into ID3 tags:
//
//	art, err := cover.Prepare(rawImage, settings.CoverMaxSize)
//	if err != nil {
//	    return err
//	}
//	afero.WriteFile(fs, filepath.Join(dir, cover.Filename), art, 0o644)
package cover
