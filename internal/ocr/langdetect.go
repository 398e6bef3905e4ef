package ocr

import "unicode"

// DetectLanguage performs a lightweight heuristic language detection on
// recognized text. Scanned documents in this tool's target corpus are
// either Cyrillic or Latin script, so the check is a simple script scan.
// Returns "ru" for Cyrillic text, otherwise "en".
func DetectLanguage(s string) string {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return "ru"
		}
	}
	return "en"
}

// TesseractLanguage maps a detected language code to the corresponding
// tesseract trained-data identifier.
func TesseractLanguage(code string) string {
	switch code {
	case "ru":
		return "rus"
	default:
		return "eng"
	}
}
