package server

import (
	"net/http"

	"github.com/FitoDomik/pdf-to-docx/internal/classify"
	"github.com/FitoDomik/pdf-to-docx/internal/document"
	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the HTTP server state and dependencies. Recognition
// engines are created per request: backends such as tesseract clients
// are not safe for concurrent use.
type Server struct {
	engineConfig ocr.Config
	maxUploadMB  int64
	timeoutSec   int
}

// Config holds server configuration.
type Config struct {
	Host        string
	Port        int
	MaxUploadMB int64
	TimeoutSec  int
	Engine      ocr.Config
}

// Response types for API endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// PageElement is one recognized element in a JSON conversion response.
type PageElement struct {
	Text       string                  `json:"text"`
	Role       classify.Role           `json:"role"`
	Style      document.ParagraphStyle `json:"style"`
	Confidence float64                 `json:"confidence"`
	Bounds     document.Quad           `json:"bounds"`
}

// Page is one document page in a JSON conversion response.
type Page struct {
	Number   int           `json:"number"`
	Elements []PageElement `json:"elements"`
}

// ConvertResult carries the reconstructed document structure.
type ConvertResult struct {
	Pages []Page `json:"pages"`
}

// ConvertResponse is the JSON envelope for conversion requests.
type ConvertResponse struct {
	Success bool           `json:"success"`
	Result  *ConvertResult `json:"result,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// NewServer creates a new conversion server instance. The engine
// configuration is validated by constructing a probe engine once, so an
// unusable engine fails startup instead of every request.
func NewServer(config Config) (*Server, error) {
	probe, err := ocr.NewEngine(config.Engine)
	if err != nil {
		return nil, err
	}
	if err := probe.Close(); err != nil {
		return nil, err
	}

	return &Server{
		engineConfig: config.Engine,
		maxUploadMB:  config.MaxUploadMB,
		timeoutSec:   config.TimeoutSec,
	}, nil
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.instrument(s.healthHandler))
	mux.HandleFunc("/convert", s.instrument(s.convertHandler))
	mux.HandleFunc("/ws/convert", s.convertWebSocketHandler)
	mux.Handle("/metrics", promhttp.Handler())
}

// resultFromDocument flattens a structured document into the JSON
// response shape.
func resultFromDocument(doc document.StructuredDocument) *ConvertResult {
	result := &ConvertResult{Pages: make([]Page, 0, len(doc.Pages))}
	for i, page := range doc.Pages {
		p := Page{Number: i + 1, Elements: make([]PageElement, 0, len(page.Elements))}
		for _, el := range page.Elements {
			p.Elements = append(p.Elements, PageElement{
				Text:       el.Text,
				Role:       el.Role,
				Style:      document.StyleFor(el),
				Confidence: el.Confidence,
				Bounds:     el.Bounds,
			})
		}
		result.Pages = append(result.Pages, p)
	}
	return result
}
