package utils

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultThumbnailSize caps the longer edge of generated thumbnails.
const DefaultThumbnailSize = 400

// Thumbnail scales an image down so its longer edge is at most maxSize
// pixels, preserving aspect ratio. Images already within the bound are
// returned unchanged. maxSize <= 0 uses the default.
func Thumbnail(img image.Image, maxSize int) image.Image {
	if maxSize <= 0 {
		maxSize = DefaultThumbnailSize
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSize && h <= maxSize {
		return img
	}
	if w >= h {
		return imaging.Resize(img, maxSize, h*maxSize/max(w, 1), imaging.Lanczos)
	}
	return imaging.Resize(img, w*maxSize/max(h, 1), maxSize, imaging.Lanczos)
}
