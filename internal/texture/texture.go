// Package texture decodes image files and prepares them for upload: optional vertical
// flip (image rows run top-down, texture coordinates bottom-up) and an optional square resize.
package texture

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// Options controls Prepare.
type Options struct {
	FlipY bool
	// Size > 0 resizes the image to Size×Size.
	Size int
}

// Prepare returns an RGBA copy of img with opts applied. img is not modified.
func Prepare(img image.Image, opts Options) *image.RGBA {
	out := clone.AsRGBA(img)
	if opts.Size > 0 {
		b := out.Bounds()
		if b.Dx() != opts.Size || b.Dy() != opts.Size {
			out = transform.Resize(out, opts.Size, opts.Size, transform.Linear)
		}
	}
	if opts.FlipY {
		out = transform.FlipV(out)
	}
	return out
}

// Load decodes the file at path (png, jpeg or bmp) and prepares it.
func Load(path string, opts Options) (*image.RGBA, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return Prepare(img, opts), nil
}
