package pdf

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"

	"github.com/FitoDomik/pdf-to-docx/internal/document"
)

// TextBlock is one vector text row extracted from a born-digital PDF
// page, with an approximate bounding quadrilateral in page coordinates.
type TextBlock struct {
	Page   int           `json:"page"`
	Text   string        `json:"text"`
	Bounds document.Quad `json:"bounds"`
}

// ExtractTextBlocks extracts vector text rows from every page of a PDF.
// Pages without extractable text contribute no blocks; scanned pages are
// expected to go through OCR instead.
func ExtractTextBlocks(filename string) ([]TextBlock, error) {
	reader, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open PDF %q: %w", filename, err)
	}

	var blocks []TextBlock
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		blocks = append(blocks, extractPageBlocks(page, pageNum)...)
	}
	return blocks, nil
}

// extractPageBlocks converts one page's text rows into blocks. Row
// geometry is approximated from the per-glyph positions the parser
// reports: the row spans min..max X at the row's baseline.
func extractPageBlocks(page pdf.Page, pageNum int) []TextBlock {
	rows, err := page.GetTextByRow()
	if err != nil || len(rows) == 0 {
		return nil
	}

	var blocks []TextBlock
	for _, row := range rows {
		var sb strings.Builder
		minX, maxX := 0.0, 0.0
		height := 12.0
		for i, text := range row.Content {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(text.S)
			if i == 0 || text.X < minX {
				minX = text.X
			}
			if right := text.X + text.W; right > maxX {
				maxX = right
			}
			if text.FontSize > 0 {
				height = text.FontSize
			}
		}
		content := strings.TrimSpace(sb.String())
		if content == "" {
			continue
		}
		y := float64(row.Position)
		blocks = append(blocks, TextBlock{
			Page: pageNum,
			Text: content,
			Bounds: document.Quad{
				{X: minX, Y: y},
				{X: maxX, Y: y},
				{X: maxX, Y: y + height},
				{X: minX, Y: y + height},
			},
		})
	}
	return blocks
}
