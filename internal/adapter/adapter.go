// Package adapter normalizes engine-specific recognition results into the
// canonical page model. Raw results arrive in one of several incompatible
// shapes depending on the engine and its version; the adapter probes them
// in a fixed priority order and degrades to an error-placeholder page
// instead of failing on malformed input.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/FitoDomik/pdf-to-docx/internal/classify"
	"github.com/FitoDomik/pdf-to-docx/internal/document"
	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
	"golang.org/x/text/unicode/norm"
)

// Adapt converts one raw recognition result into a PageResult. It never
// fails: malformed or unknown input produces a single-element placeholder
// page carrying a diagnostic instead of an error.
//
// Shape probing order: rich fields object, keyed mapping, whole-page
// transcript, per-line sequence. Elements whose text is empty after
// trimming are dropped; unrecognized line entries are skipped with a
// diagnostic.
func Adapt(raw ocr.RawResult, sourceRef string) (page document.PageResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while adapting recognition result", "source", sourceRef, "panic", r)
			page = PlaceholderPage(sourceRef, fmt.Errorf("adapt recognition result: %v", r))
		}
	}()

	switch v := raw.(type) {
	case ocr.Fields:
		return adaptFields(v, sourceRef)
	case *ocr.Fields:
		if v == nil {
			return PlaceholderPage(sourceRef, errors.New("empty recognition result"))
		}
		return adaptFields(*v, sourceRef)
	case map[string]any:
		if hasRecognitionKeys(v) {
			return adaptKeyed(v, sourceRef)
		}
		return PlaceholderPage(sourceRef, errors.New("mapping result is missing recognition keys"))
	case ocr.Transcript:
		return adaptTranscript(v, sourceRef)
	case *ocr.Transcript:
		if v == nil {
			return PlaceholderPage(sourceRef, errors.New("empty recognition result"))
		}
		return adaptTranscript(*v, sourceRef)
	case []any:
		return adaptLines(v, sourceRef)
	case nil:
		return PlaceholderPage(sourceRef, errors.New("empty recognition result"))
	default:
		return PlaceholderPage(sourceRef, fmt.Errorf("unrecognized result shape %T", raw))
	}
}

// PlaceholderPage builds the one-element page standing in for an image
// whose recognition or adaptation failed. The page is visibly marked in
// the output document rather than silently dropped.
func PlaceholderPage(sourceRef string, cause error) document.PageResult {
	return document.PageResult{
		SourceRef: sourceRef,
		Shape:     document.ShapeError,
		Elements: []document.TextElement{{
			Text:       fmt.Sprintf("RECOGNITION ERROR: %v", cause),
			Confidence: 0.0,
			Bounds:     document.PlaceholderQuad(),
			Role:       classify.ErrorPlaceholder,
		}},
	}
}

// adaptFields handles the rich result object with parallel collections.
func adaptFields(f ocr.Fields, sourceRef string) document.PageResult {
	page := document.PageResult{SourceRef: sourceRef, Shape: document.ShapeFields}
	n := len(f.Texts)
	if len(f.Polys) < n {
		n = len(f.Polys)
	}
	if len(f.Scores) > 0 && len(f.Scores) < n {
		n = len(f.Scores)
	}
	for i := range n {
		score := any(nil)
		if i < len(f.Scores) {
			score = f.Scores[i]
		}
		appendElement(&page, f.Texts[i], f.Polys[i], score)
	}
	return page
}

// adaptKeyed handles a mapping carrying the same three collections under
// "rec_texts"/"rec_polys"/"rec_scores" keys.
func adaptKeyed(m map[string]any, sourceRef string) document.PageResult {
	page := document.PageResult{SourceRef: sourceRef, Shape: document.ShapeKeyed}
	texts := toAnySlice(m["rec_texts"])
	polys := toAnySlice(m["rec_polys"])
	scores := toAnySlice(m["rec_scores"])

	n := len(texts)
	if len(polys) < n {
		n = len(polys)
	}
	if len(scores) > 0 && len(scores) < n {
		n = len(scores)
	}
	for i := range n {
		text, ok := texts[i].(string)
		if !ok {
			slog.Debug("skipping non-string recognition text", "source", sourceRef, "index", i)
			continue
		}
		score := any(nil)
		if i < len(scores) {
			score = scores[i]
		}
		appendElement(&page, text, polys[i], score)
	}
	return page
}

// adaptTranscript handles the whole-page transcription mode for engines
// that do not report per-line boxes: exactly one element bounded by the
// image's pixel dimensions, left unclassified for the late pass.
func adaptTranscript(t ocr.Transcript, sourceRef string) document.PageResult {
	w := float64(t.Width)
	h := float64(t.Height)
	return document.PageResult{
		SourceRef: sourceRef,
		Shape:     document.ShapeWholePage,
		Elements: []document.TextElement{{
			Text:       norm.NFC.String(t.Text),
			Confidence: document.DefaultConfidence,
			Bounds:     document.Quad{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}},
			Role:       classify.Unclassified,
		}},
	}
}

// adaptLines handles the line-sequence shape: each entry is a pair of
// (coordinates, (text, confidence)), a list of coordinates/text[/score],
// or a mapping with box/text/confidence keys.
func adaptLines(lines []any, sourceRef string) document.PageResult {
	page := document.PageResult{SourceRef: sourceRef, Shape: document.ShapeLines}
	for i, line := range lines {
		coords, text, score, ok := decodeLine(line)
		if !ok {
			slog.Warn("skipping unrecognized line shape", "source", sourceRef, "index", i, "type", fmt.Sprintf("%T", line))
			continue
		}
		appendElement(&page, text, coords, score)
	}
	return page
}

// decodeLine extracts coordinates, text, and score from one line entry.
func decodeLine(line any) (coords any, text string, score any, ok bool) {
	switch v := line.(type) {
	case map[string]any:
		coords = v["box"]
		if coords == nil {
			coords = document.PlaceholderQuad()
		}
		text, _ = v["text"].(string)
		return coords, text, v["confidence"], true
	case []any:
		if len(v) < 2 {
			return nil, "", nil, false
		}
		// Pair form: second entry is itself a (text, confidence) pair.
		if pair, isPair := v[1].([]any); isPair && len(pair) >= 2 {
			if t, isStr := pair[0].(string); isStr {
				return v[0], t, pair[1], true
			}
			return nil, "", nil, false
		}
		if t, isStr := v[1].(string); isStr {
			if len(v) > 2 {
				return v[0], t, v[2], true
			}
			return v[0], t, nil, true
		}
		return nil, "", nil, false
	default:
		return nil, "", nil, false
	}
}

// appendElement normalizes and appends one element, dropping texts that
// are empty after trimming.
func appendElement(page *document.PageResult, text string, coords, score any) {
	if strings.TrimSpace(text) == "" {
		return
	}
	page.Elements = append(page.Elements, document.TextElement{
		Text:       norm.NFC.String(text),
		Confidence: coerceConfidence(score),
		Bounds:     coerceQuad(coords),
		Role:       classify.Unclassified,
	})
}

func hasRecognitionKeys(m map[string]any) bool {
	_, hasTexts := m["rec_texts"]
	_, hasPolys := m["rec_polys"]
	return hasTexts && hasPolys
}
