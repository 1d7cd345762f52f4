package cover

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// jpegQuality is the encoding quality for prepared covers. High enough
// for embedded art, small enough to keep tagged files reasonable.
const jpegQuality = 90

// Filename is the name covers are saved under in the album directory.
const Filename = "cover.jpg"

// Prepare decodes raw artwork bytes, scales the image down to fit
// within maxSize pixels on its longer side, and re-encodes it as JPEG.
//
// The aspect ratio is preserved. Images already within the bound are
// not upscaled, only re-encoded, so the output is always JPEG
// regardless of the source format.
//
// The Catmull-Rom kernel is used for scaling.
//
// Example:
//
//	data, _ := client.Get(ctx, album.ArtworkURL)
//	art, err := cover.Prepare(data, 1000)
//	if err != nil {
//	    return fmt.Errorf("bad artwork: %w", err)
//	}
func Prepare(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode artwork: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	longest := width
	if height > longest {
		longest = height
	}
	if maxSize > 0 && longest > maxSize {
		scale := float64(maxSize) / float64(longest)
		width = int(float64(width) * scale)
		height = int(float64(height) * scale)

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode artwork: %w", err)
	}
	return buf.Bytes(), nil
}
