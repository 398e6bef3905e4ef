package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/FitoDomik/pdf-to-docx/internal/convert"
	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
	"github.com/FitoDomik/pdf-to-docx/internal/pipeline"
	"github.com/FitoDomik/pdf-to-docx/internal/utils"
	"github.com/FitoDomik/pdf-to-docx/internal/version"
)

const (
	formatDocx = "docx"
	formatJSON = "json"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ver, _, _ := version.Info()
	response := HealthResponse{
		Status:  "healthy",
		Version: ver,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding health response: %v\n", err)
	}
}

// convertHandler processes document conversion requests. Uploaded PDFs
// and images arrive as multipart "file" parts; the response is either
// the .docx bytes or the reconstructed structure as JSON.
func (s *Server) convertHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadMB*1024*1024)

	if err := r.ParseMultipartForm(s.maxUploadMB * 1024 * 1024); err != nil {
		s.writeErrorResponse(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["file"]) == 0 {
		s.writeErrorResponse(w, "No file provided", http.StatusBadRequest)
		return
	}

	format := r.FormValue("format")
	if format == "" {
		format = formatDocx
	}
	if format != formatDocx && format != formatJSON {
		s.writeErrorResponse(w, fmt.Sprintf("Unsupported format %q", format), http.StatusBadRequest)
		return
	}

	uploadDir, err := os.MkdirTemp("", "scan2docx-upload-*")
	if err != nil {
		s.writeErrorResponse(w, "Failed to create upload directory", http.StatusInternalServerError)
		return
	}
	defer func() { _ = os.RemoveAll(uploadDir) }()

	inputs, err := s.saveUploads(uploadDir, r.MultipartForm.File["file"])
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	engine, err := ocr.NewEngine(s.engineConfig)
	if err != nil {
		s.writeErrorResponse(w, "Recognition engine unavailable", http.StatusServiceUnavailable)
		return
	}
	defer func() { _ = engine.Close() }()

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(s.timeoutSec)*time.Second)
	defer cancel()

	outputPath := ""
	if format == formatDocx {
		outputPath = filepath.Join(uploadDir, "result.docx")
	}

	start := time.Now()
	doc, err := convert.Run(ctx, inputs, outputPath, engine, convert.Options{
		PageRange: r.FormValue("pages"),
		Progress:  pipeline.NewLogProgressCallback(slog.Default()),
	})
	if err != nil {
		conversionsTotal.WithLabelValues("error").Inc()
		s.writeErrorResponse(w, fmt.Sprintf("Conversion failed: %v", err), http.StatusInternalServerError)
		return
	}
	conversionsTotal.WithLabelValues("success").Inc()
	conversionDuration.Observe(time.Since(start).Seconds())
	pagesPerDocument.Observe(float64(len(doc.Pages)))

	if format == formatJSON {
		w.Header().Set("Content-Type", "application/json")
		response := ConvertResponse{Success: true, Result: resultFromDocument(doc)}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding convert response: %v\n", err)
		}
		return
	}

	f, err := os.Open(outputPath)
	if err != nil {
		s.writeErrorResponse(w, "Failed to read conversion output", http.StatusInternalServerError)
		return
	}
	defer func() { _ = f.Close() }()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="result.docx"`)
	if _, err := io.Copy(w, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing docx response: %v\n", err)
	}
}

// saveUploads writes the uploaded parts into dir, keeping the original
// file extensions, and returns their paths in upload order.
func (s *Server) saveUploads(dir string, files []*multipart.FileHeader) ([]string, error) {
	inputs := make([]string, 0, len(files))
	for i, header := range files {
		if header.Size > s.maxUploadMB*1024*1024 {
			return nil, fmt.Errorf("file %s too large", header.Filename)
		}

		name := filepath.Base(header.Filename)
		if !utils.IsPDF(name) && !utils.IsSupportedImage(name) {
			return nil, fmt.Errorf("unsupported file type: %s", name)
		}
		uploadSizeBytes.Observe(float64(header.Size))

		src, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %s: %w", name, err)
		}

		path := filepath.Join(dir, fmt.Sprintf("%03d_%s", i, name))
		dst, err := os.Create(path)
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("save upload %s: %w", name, err)
		}
		_, err = io.Copy(dst, src)
		_ = src.Close()
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("save upload %s: %w", name, err)
		}
		inputs = append(inputs, path)
	}
	return inputs, nil
}

// writeErrorResponse writes a JSON error envelope.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := ConvertResponse{Success: false, Error: message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding error response: %v\n", err)
	}
}
