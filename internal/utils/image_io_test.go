package utils

import (
	"path/filepath"
	"testing"

	"github.com/FitoDomik/pdf-to-docx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedImage(t *testing.T) {
	assert.True(t, IsSupportedImage("scan.png"))
	assert.True(t, IsSupportedImage("scan.jpg"))
	assert.True(t, IsSupportedImage("scan.JPEG"))
	assert.True(t, IsSupportedImage("/some/dir/scan.bmp"))
	assert.False(t, IsSupportedImage("scan.gif"))
	assert.False(t, IsSupportedImage("scan.pdf"))
	assert.False(t, IsSupportedImage("scan"))
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("doc.pdf"))
	assert.True(t, IsPDF("doc.PDF"))
	assert.False(t, IsPDF("doc.docx"))
	assert.False(t, IsPDF("pdf"))
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteTestImage(t, dir, "test.png", 32, 16)

	img, err := LoadImage(path)

	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestLoadImage_UnsupportedExtension(t *testing.T) {
	_, err := LoadImage("document.tiff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image format")
}

func TestLoadImage_MissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
}
