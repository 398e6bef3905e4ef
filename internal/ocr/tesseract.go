package ocr

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/otiai10/gosseract/v2"
	_ "golang.org/x/image/bmp"
)

// TesseractEngine performs recognition with a local Tesseract install via
// gosseract. It reports per-line boxes as the line-sequence raw shape, or
// a whole-page Transcript when configured without line segmentation.
type TesseractEngine struct {
	client    *gosseract.Client
	wholePage bool
}

// NewTesseractEngine creates a tesseract-backed engine. A failure to
// configure the client (typically a missing tesseract install or trained
// data) is reported as ErrEngineUnavailable.
func NewTesseractEngine(cfg Config) (*TesseractEngine, error) {
	client := gosseract.NewClient()
	if len(cfg.Languages) > 0 {
		if err := client.SetLanguage(cfg.Languages...); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("%w: set languages %v: %v", ErrEngineUnavailable, cfg.Languages, err)
		}
	}
	return &TesseractEngine{client: client, wholePage: cfg.WholePage}, nil
}

func (e *TesseractEngine) Name() string { return EngineTesseract }

// Recognize runs OCR on one image file. The context is checked before the
// blocking engine call; there is no mid-image cancellation.
func (e *TesseractEngine) Recognize(ctx context.Context, imagePath string) (RawResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("set image %s: %w", imagePath, err)
	}

	if e.wholePage {
		return e.recognizeWholePage(imagePath)
	}

	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("bounding boxes for %s: %w", imagePath, err)
	}

	lines := make([]any, 0, len(boxes))
	for _, b := range boxes {
		coords := [][]float64{
			{float64(b.Box.Min.X), float64(b.Box.Min.Y)},
			{float64(b.Box.Max.X), float64(b.Box.Min.Y)},
			{float64(b.Box.Max.X), float64(b.Box.Max.Y)},
			{float64(b.Box.Min.X), float64(b.Box.Max.Y)},
		}
		lines = append(lines, []any{coords, b.Word, b.Confidence / 100.0})
	}
	return lines, nil
}

func (e *TesseractEngine) recognizeWholePage(imagePath string) (RawResult, error) {
	text, err := e.client.Text()
	if err != nil {
		return nil, fmt.Errorf("recognize %s: %w", imagePath, err)
	}
	w, h, err := imageDimensions(imagePath)
	if err != nil {
		return nil, err
	}
	return Transcript{Text: text, Width: w, Height: h}, nil
}

// Close releases the underlying tesseract client.
func (e *TesseractEngine) Close() error {
	if e.client == nil {
		return nil
	}
	err := e.client.Close()
	e.client = nil
	return err
}

// imageDimensions reads just the image header to get pixel dimensions.
func imageDimensions(path string) (int, int, error) {
	f, err := os.Open(path) //nolint:gosec // G304: user-provided image path is expected
	if err != nil {
		return 0, 0, fmt.Errorf("open image %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image header %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
