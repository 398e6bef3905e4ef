package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
		wantErr  bool
	}{
		{"empty selects all", "", nil, false},
		{"single page", "3", []int{3}, false},
		{"simple range", "1-5", []int{1, 2, 3, 4, 5}, false},
		{"comma list", "1,3,5", []int{1, 3, 5}, false},
		{"mixed list and range", "1,3-5,9", []int{1, 3, 4, 5, 9}, false},
		{"spaces tolerated", " 1 , 2-3 ", []int{1, 2, 3}, false},
		{"reversed range", "5-1", nil, true},
		{"garbage", "abc", nil, true},
		{"bad range member", "1-x", nil, true},
		{"triple dash", "1-2-3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := parsePageRange(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pages)
		})
	}
}

func TestParsePageFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected int
		wantErr  bool
	}{
		{"standard pdfcpu name", "scan_page_3_Im0.png", 3, false},
		{"page prefix", "page_12_img.jpg", 12, false},
		{"multi-part basename", "my_doc_page_7_Im1.png", 7, false},
		{"no page token", "image001.png", 0, true},
		{"page token without number", "scan_page_final.png", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := parsePageFromFilename(tt.filename)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page)
		})
	}
}

func TestCollectExtractedImages(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"scan_page_2_Im0.png",
		"scan_page_1_Im1.png",
		"scan_page_1_Im0.png",
		"notes.txt",
		"scan_page_10_Im0.png",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	images, err := collectExtractedImages(dir)

	require.NoError(t, err)
	require.Len(t, images, 4, "files without a page token are skipped")
	assert.Equal(t, 1, images[0].Page)
	assert.Equal(t, filepath.Join(dir, "scan_page_1_Im0.png"), images[0].Path)
	assert.Equal(t, 1, images[1].Page)
	assert.Equal(t, 2, images[2].Page)
	assert.Equal(t, 10, images[3].Page, "numeric page order, not lexicographic")
}

func TestCollectExtractedImages_MissingDir(t *testing.T) {
	_, err := collectExtractedImages(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
