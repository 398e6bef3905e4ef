package ocr

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/disintegration/imaging"
	onnxrt "github.com/yalue/onnxruntime_go"
)

// PaddleEngine runs a PaddleOCR-style text recognition model through ONNX
// Runtime and returns a whole-page Transcript. It has no detection stage,
// so it suits single-line or pre-segmented page images; the pipeline's
// secondary whole-page adaptation mode handles the missing line boxes.
type PaddleEngine struct {
	session    *onnxrt.DynamicAdvancedSession
	dictionary []string
	inputName  string
	outputName string
	height     int
}

// NewPaddleEngine creates the ONNX-backed engine. Missing model or
// dictionary files, or an ONNX Runtime that cannot be initialized, are
// reported as ErrEngineUnavailable before any image is processed.
func NewPaddleEngine(cfg Config) (*PaddleEngine, error) {
	if cfg.ModelPath == "" || cfg.DictPath == "" {
		return nil, fmt.Errorf("%w: paddle engine requires model and dictionary paths", ErrEngineUnavailable)
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("%w: recognition model not found: %s", ErrEngineUnavailable, cfg.ModelPath)
	}
	dict, err := loadDictionary(cfg.DictPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	if !onnxrt.IsInitialized() {
		if err := onnxrt.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("%w: initialize ONNX Runtime: %v", ErrEngineUnavailable, err)
		}
	}

	inputs, outputs, err := onnxrt.GetInputOutputInfo(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: inspect model %s: %v", ErrEngineUnavailable, cfg.ModelPath, err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, fmt.Errorf("%w: model %s has no usable inputs/outputs", ErrEngineUnavailable, cfg.ModelPath)
	}

	height := 48
	if len(inputs[0].Dimensions) == 4 {
		if h := inputs[0].Dimensions[2]; h > 0 {
			height = int(h)
		}
	}

	session, err := onnxrt.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create ONNX session: %v", ErrEngineUnavailable, err)
	}

	return &PaddleEngine{
		session:    session,
		dictionary: dict,
		inputName:  inputs[0].Name,
		outputName: outputs[0].Name,
		height:     height,
	}, nil
}

func (e *PaddleEngine) Name() string { return EnginePaddle }

// Recognize runs the recognition model over the whole image and returns a
// Transcript with the CTC-decoded text.
func (e *PaddleEngine) Recognize(ctx context.Context, imagePath string) (RawResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(imagePath) //nolint:gosec // G304: user-provided image path is expected
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", imagePath, err)
	}
	img, _, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", imagePath, err)
	}

	origW := img.Bounds().Dx()
	origH := img.Bounds().Dy()

	data, w, h := e.preprocess(img)
	inputTensor, err := onnxrt.NewTensor(onnxrt.NewShape(1, 3, int64(h), int64(w)), data)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer func() { _ = inputTensor.Destroy() }()

	outputs := []onnxrt.Value{nil}
	if err := e.session.Run([]onnxrt.Value{inputTensor}, outputs); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	outTensor, ok := outputs[0].(*onnxrt.Tensor[float32])
	if !ok {
		for _, o := range outputs {
			if o != nil {
				_ = o.Destroy()
			}
		}
		return nil, fmt.Errorf("expected float32 output tensor, got %T", outputs[0])
	}
	defer func() { _ = outTensor.Destroy() }()

	text := e.decodeCTC(outTensor.GetData(), outTensor.GetShape())
	return Transcript{Text: text, Width: origW, Height: origH}, nil
}

// Close releases the ONNX session.
func (e *PaddleEngine) Close() error {
	if e.session != nil {
		_ = e.session.Destroy()
		e.session = nil
	}
	return nil
}

// preprocess resizes the image to the model height preserving aspect ratio
// and packs it as a normalized NCHW float32 buffer in [-1, 1].
func (e *PaddleEngine) preprocess(img image.Image) ([]float32, int, int) {
	h := e.height
	w := img.Bounds().Dx() * h / max(img.Bounds().Dy(), 1)
	if w < 1 {
		w = 1
	}
	resized := imaging.Resize(img, w, h, imaging.Lanczos)

	data := make([]float32, 3*h*w)
	for y := range h {
		for x := range w {
			r, g, b, _ := resized.At(x, y).RGBA()
			data[0*h*w+y*w+x] = float32(r>>8)/127.5 - 1.0
			data[1*h*w+y*w+x] = float32(g>>8)/127.5 - 1.0
			data[2*h*w+y*w+x] = float32(b>>8)/127.5 - 1.0
		}
	}
	return data, w, h
}

// decodeCTC greedy-decodes a [1, T, C] probability tensor: argmax per
// timestep, collapse repeats, skip the blank class at index 0.
func (e *PaddleEngine) decodeCTC(data []float32, shape []int64) string {
	if len(shape) != 3 || shape[1] == 0 || shape[2] == 0 {
		return ""
	}
	steps := int(shape[1])
	classes := int(shape[2])

	var out []rune
	prev := -1
	for t := range steps {
		row := data[t*classes : (t+1)*classes]
		best := 0
		bestVal := float32(math.Inf(-1))
		for c, v := range row {
			if v > bestVal {
				best, bestVal = c, v
			}
		}
		if best != 0 && best != prev {
			if idx := best - 1; idx < len(e.dictionary) {
				out = append(out, []rune(e.dictionary[idx])...)
			}
		}
		prev = best
	}
	return string(out)
}

// loadDictionary reads the character dictionary, one entry per line.
func loadDictionary(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: dictionary path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var dict []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		dict = append(dict, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return dict, nil
}
