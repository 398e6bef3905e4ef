package utils

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThumbnail_Landscape(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 400))

	thumb := Thumbnail(img, 400)

	assert.Equal(t, 400, thumb.Bounds().Dx())
	assert.Equal(t, 200, thumb.Bounds().Dy())
}

func TestThumbnail_Portrait(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 900))

	thumb := Thumbnail(img, 300)

	assert.Equal(t, 100, thumb.Bounds().Dx())
	assert.Equal(t, 300, thumb.Bounds().Dy())
}

func TestThumbnail_SmallImageUnchanged(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))

	thumb := Thumbnail(img, 400)

	assert.Equal(t, 100, thumb.Bounds().Dx())
	assert.Equal(t, 50, thumb.Bounds().Dy())
}

func TestThumbnail_DefaultSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1200, 600))

	thumb := Thumbnail(img, 0)

	assert.Equal(t, DefaultThumbnailSize, thumb.Bounds().Dx())
	assert.Equal(t, 200, thumb.Bounds().Dy())
}
