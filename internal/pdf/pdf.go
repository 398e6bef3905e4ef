// Package pdf provides the PDF-side capabilities of the converter:
// per-page image extraction for scanned documents, embedded image
// listing, and vector text extraction for born-digital pages.
package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageImage is one image extracted from a PDF, tagged with its page.
type PageImage struct {
	Page int
	Path string
}

// ExtractPageImages extracts the images of a scanned PDF into destDir and
// returns them ordered by source page. Scanned documents carry one
// full-page raster per page, so the returned order matches page order.
// pageRange follows the "1-5" / "1,3,5" syntax; empty means all pages.
func ExtractPageImages(filename, pageRange, destDir string) ([]PageImage, error) {
	pageNumbers, err := parsePageRange(pageRange)
	if err != nil {
		return nil, fmt.Errorf("invalid page range %q: %w", pageRange, err)
	}

	var pageStrings []string
	if len(pageNumbers) > 0 {
		pageStrings = make([]string, len(pageNumbers))
		for i, pageNum := range pageNumbers {
			pageStrings[i] = strconv.Itoa(pageNum)
		}
	}

	if err := api.ExtractImagesFile(filename, destDir, pageStrings, nil); err != nil {
		return nil, fmt.Errorf("extract images from %s: %w", filename, err)
	}

	return collectExtractedImages(destDir)
}

// ExtractEmbeddedImages lists all images embedded in a PDF, tagged with
// their page numbers. Placement rectangles are not reported by the
// underlying extraction API, so consumers get page-level granularity.
// This is an alternate image source; the primary conversion path uses
// ExtractPageImages with a page range.
func ExtractEmbeddedImages(filename, destDir string) ([]PageImage, error) {
	return ExtractPageImages(filename, "", destDir)
}

// collectExtractedImages walks destDir and orders extracted image files by
// page number, then by filename for images within the same page. pdfcpu
// names files like <basename>_page_<num>_<id>.<ext> or page_<num>_...
func collectExtractedImages(dir string) ([]PageImage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read extraction dir %s: %w", dir, err)
	}

	var images []PageImage
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		page, err := parsePageFromFilename(entry.Name())
		if err != nil {
			continue
		}
		images = append(images, PageImage{Page: page, Path: filepath.Join(dir, entry.Name())})
	}

	sort.SliceStable(images, func(i, j int) bool {
		if images[i].Page != images[j].Page {
			return images[i].Page < images[j].Page
		}
		return images[i].Path < images[j].Path
	})
	return images, nil
}

// parsePageFromFilename extracts the page number from a pdfcpu-generated
// image filename.
func parsePageFromFilename(filename string) (int, error) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	parts := strings.Split(base, "_")
	for i, part := range parts {
		if part == "page" && i+1 < len(parts) {
			if pageNum, err := strconv.Atoi(parts[i+1]); err == nil {
				return pageNum, nil
			}
		}
	}
	return 0, errors.New("no page number in filename")
}

// parsePageRange parses a page range string like "1-5" or "1,3,5".
// Empty input selects all pages.
func parsePageRange(pageRange string) ([]int, error) {
	if pageRange == "" {
		return nil, nil
	}

	var pages []int
	for _, part := range strings.Split(pageRange, ",") {
		tokenPages, err := parseRangeToken(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		pages = append(pages, tokenPages...)
	}
	return pages, nil
}

// parseRangeToken parses a single page token ("3") or range token ("1-5").
func parseRangeToken(part string) ([]int, error) {
	if strings.Contains(part, "-") {
		rangeParts := strings.Split(part, "-")
		if len(rangeParts) != 2 {
			return nil, fmt.Errorf("invalid range format: %s", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid start page: %s", rangeParts[0])
		}
		end, err := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid end page: %s", rangeParts[1])
		}
		if start > end {
			return nil, fmt.Errorf("start page %d greater than end page %d", start, end)
		}
		out := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			out = append(out, i)
		}
		return out, nil
	}
	page, err := strconv.Atoi(part)
	if err != nil {
		return nil, fmt.Errorf("invalid page number: %s", part)
	}
	return []int{page}, nil
}
