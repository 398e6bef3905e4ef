package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/FitoDomik/pdf-to-docx/internal/convert"
	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
	"github.com/FitoDomik/pdf-to-docx/internal/utils"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader with reasonable defaults.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin in development
		return true
	},
}

// WebSocketConvertRequest is a conversion request sent over WebSocket.
// Data carries the file content (base64 in the JSON encoding).
type WebSocketConvertRequest struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
	Pages    string `json:"pages,omitempty"`
}

// WebSocketConvertResponse is a message streamed back to the client.
type WebSocketConvertResponse struct {
	Type     string         `json:"type"`   // "progress", "completed", "error"
	Status   string         `json:"status"` // "processing", "completed", "error"
	Progress int            `json:"progress,omitempty"`
	Result   *ConvertResult `json:"result,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// convertWebSocketHandler streams conversion progress over a WebSocket.
// The client sends one request and receives progress messages followed
// by the reconstructed document structure.
func (s *Server) convertWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	websocketConnections.Inc()
	defer websocketConnections.Dec()

	slog.Info("WebSocket connection established", "remote_addr", r.RemoteAddr)

	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	var req WebSocketConvertRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.writeWebSocketError(conn, fmt.Sprintf("invalid request: %v", err))
		return
	}

	s.handleWebSocketConvert(r.Context(), conn, req)
}

// handleWebSocketConvert runs one conversion and streams its progress.
func (s *Server) handleWebSocketConvert(ctx context.Context, conn *websocket.Conn, req WebSocketConvertRequest) {
	name := filepath.Base(req.Filename)
	if !utils.IsPDF(name) && !utils.IsSupportedImage(name) {
		s.writeWebSocketError(conn, fmt.Sprintf("unsupported file type: %s", name))
		return
	}
	if int64(len(req.Data)) > s.maxUploadMB*1024*1024 {
		s.writeWebSocketError(conn, "file too large")
		return
	}

	dir, err := os.MkdirTemp("", "scan2docx-ws-*")
	if err != nil {
		s.writeWebSocketError(conn, "failed to create upload directory")
		return
	}
	defer func() { _ = os.RemoveAll(dir) }()

	input := filepath.Join(dir, name)
	if err := os.WriteFile(input, req.Data, 0o600); err != nil {
		s.writeWebSocketError(conn, "failed to save upload")
		return
	}

	engine, err := ocr.NewEngine(s.engineConfig)
	if err != nil {
		s.writeWebSocketError(conn, "recognition engine unavailable")
		return
	}
	defer func() { _ = engine.Close() }()

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(s.timeoutSec)*time.Second)
	defer cancel()

	start := time.Now()
	doc, err := convert.Run(runCtx, []string{input}, "", engine, convert.Options{
		PageRange: req.Pages,
		OnProgress: func(percent int) {
			msg := WebSocketConvertResponse{Type: "progress", Status: "processing", Progress: percent}
			if err := conn.WriteJSON(msg); err != nil {
				slog.Debug("failed to write progress message", "error", err)
			}
		},
	})
	if err != nil {
		conversionsTotal.WithLabelValues("error").Inc()
		s.writeWebSocketError(conn, fmt.Sprintf("conversion failed: %v", err))
		return
	}
	conversionsTotal.WithLabelValues("success").Inc()
	conversionDuration.Observe(time.Since(start).Seconds())
	pagesPerDocument.Observe(float64(len(doc.Pages)))

	final := WebSocketConvertResponse{
		Type:   "completed",
		Status: "completed",
		Result: resultFromDocument(doc),
	}
	if err := conn.WriteJSON(final); err != nil {
		slog.Debug("failed to write completion message", "error", err)
	}
}

// writeWebSocketError sends an error message, ignoring write failures on
// an already-broken connection.
func (s *Server) writeWebSocketError(conn *websocket.Conn, message string) {
	msg := WebSocketConvertResponse{Type: "error", Status: "error", Error: message}
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.Debug("failed to write error message", "error", err)
	}
}
