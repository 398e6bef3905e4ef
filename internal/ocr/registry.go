package ocr

import (
	"errors"
	"fmt"
)

// ErrEngineUnavailable indicates the requested recognition engine cannot
// be initialized at all. This is fatal for a whole batch, unlike per-image
// recognition failures which are isolated into placeholder pages.
var ErrEngineUnavailable = errors.New("recognition engine unavailable")

// Engine identifiers accepted by NewEngine.
const (
	EngineTesseract = "tesseract"
	EnginePaddle    = "paddle"
)

// Config selects and configures a recognition engine.
type Config struct {
	// Name is the engine identifier. Empty selects tesseract.
	Name string
	// Languages holds tesseract language codes (e.g., "eng", "rus").
	Languages []string
	// WholePage makes the tesseract engine return a single whole-page
	// transcription instead of per-line boxes.
	WholePage bool
	// ModelPath is the ONNX recognition model for the paddle engine.
	ModelPath string
	// DictPath is the character dictionary for the paddle engine.
	DictPath string
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Name:      EngineTesseract,
		Languages: []string{"eng"},
	}
}

// NewEngine constructs the engine named in cfg. Unknown names and engines
// whose backend cannot be initialized return an error wrapping
// ErrEngineUnavailable.
func NewEngine(cfg Config) (Engine, error) {
	name := cfg.Name
	if name == "" {
		name = EngineTesseract
	}
	switch name {
	case EngineTesseract:
		return NewTesseractEngine(cfg)
	case EnginePaddle:
		return NewPaddleEngine(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", ErrEngineUnavailable, name)
	}
}
