package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// ProgressCallback receives progress reports during batch processing.
type ProgressCallback interface {
	// OnStart is called once before the first image with the batch size.
	OnStart(total int)

	// OnProgress is called after each image completes.
	OnProgress(completed, total int)

	// OnComplete is called when the whole batch is finished.
	OnComplete()

	// OnError is called when an image fails; the batch continues.
	OnError(index int, err error)
}

// OverallPercent maps recognition progress onto the overall conversion
// percentage. The leading 10% is reserved for page preparation and the
// trailing 20% for assembly and writing, which the controller's caller
// reports; recognition fills the window in between.
func OverallPercent(completed, total int) int {
	if total <= 0 {
		return 10
	}
	return 10 + 70*completed/total
}

// NoOpProgressCallback ignores all progress reports. Used as the default
// when the caller does not ask for progress.
type NoOpProgressCallback struct{}

func (NoOpProgressCallback) OnStart(total int)               {}
func (NoOpProgressCallback) OnProgress(completed, total int) {}
func (NoOpProgressCallback) OnComplete()                     {}
func (NoOpProgressCallback) OnError(index int, err error)    {}

// PercentCallback adapts a plain percentage function to ProgressCallback,
// reporting OverallPercent after each completed image.
type PercentCallback struct {
	Fn func(percent int)
}

func (p PercentCallback) OnStart(total int) {}

func (p PercentCallback) OnProgress(completed, total int) {
	if p.Fn != nil {
		p.Fn(OverallPercent(completed, total))
	}
}

func (p PercentCallback) OnComplete()                  {}
func (p PercentCallback) OnError(index int, err error) {}

// ConsoleProgressCallback draws a progress bar on the console.
type ConsoleProgressCallback struct {
	writer         io.Writer
	prefix         string
	width          int
	lastUpdate     time.Time
	updateInterval time.Duration
	startTime      time.Time
	mutex          sync.Mutex
}

// NewConsoleProgressCallback creates a console progress reporter.
func NewConsoleProgressCallback(writer io.Writer, prefix string) *ConsoleProgressCallback {
	if writer == nil {
		writer = os.Stderr
	}
	return &ConsoleProgressCallback{
		writer:         writer,
		prefix:         prefix,
		width:          40,
		updateInterval: 100 * time.Millisecond,
	}
}

func (c *ConsoleProgressCallback) OnStart(total int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.startTime = time.Now()
	c.lastUpdate = time.Time{}
	_, _ = fmt.Fprintf(c.writer, "%s0/%d (0.0%%)\n", c.prefix, total)
}

func (c *ConsoleProgressCallback) OnProgress(completed, total int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	if now.Sub(c.lastUpdate) < c.updateInterval && completed < total {
		return
	}
	c.lastUpdate = now

	if total == 0 {
		return
	}
	percent := float64(completed) / float64(total) * 100.0
	filled := c.width * completed / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", c.width-filled)
	_, _ = fmt.Fprintf(c.writer, "\r%s[%s] %d/%d (%.1f%%)", c.prefix, bar, completed, total, percent)
}

func (c *ConsoleProgressCallback) OnComplete() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	elapsed := time.Since(c.startTime)
	_, _ = fmt.Fprintf(c.writer, "\n%sCompleted in %v\n", c.prefix, elapsed.Round(time.Millisecond))
}

func (c *ConsoleProgressCallback) OnError(index int, err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	_, _ = fmt.Fprintf(c.writer, "\n%sError at image %d: %v\n", c.prefix, index, err)
}

// LogProgressCallback reports progress through slog.
type LogProgressCallback struct {
	logger    *slog.Logger
	startTime time.Time
}

// NewLogProgressCallback creates a log-based progress reporter.
func NewLogProgressCallback(logger *slog.Logger) *LogProgressCallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogProgressCallback{logger: logger}
}

func (l *LogProgressCallback) OnStart(total int) {
	l.startTime = time.Now()
	l.logger.Info("starting recognition batch", "total", total)
}

func (l *LogProgressCallback) OnProgress(completed, total int) {
	l.logger.Debug("recognition progress",
		"completed", completed,
		"total", total,
		"percent", OverallPercent(completed, total),
	)
}

func (l *LogProgressCallback) OnComplete() {
	l.logger.Info("recognition batch complete", "elapsed", time.Since(l.startTime).Round(time.Millisecond))
}

func (l *LogProgressCallback) OnError(index int, err error) {
	l.logger.Error("image processing failed", "index", index, "error", err)
}

// MultiProgressCallback fans progress reports out to several callbacks.
type MultiProgressCallback struct {
	callbacks []ProgressCallback
}

// NewMultiProgressCallback creates a fan-out progress callback.
func NewMultiProgressCallback(callbacks ...ProgressCallback) *MultiProgressCallback {
	return &MultiProgressCallback{callbacks: callbacks}
}

func (m *MultiProgressCallback) OnStart(total int) {
	for _, cb := range m.callbacks {
		cb.OnStart(total)
	}
}

func (m *MultiProgressCallback) OnProgress(completed, total int) {
	for _, cb := range m.callbacks {
		cb.OnProgress(completed, total)
	}
}

func (m *MultiProgressCallback) OnComplete() {
	for _, cb := range m.callbacks {
		cb.OnComplete()
	}
}

func (m *MultiProgressCallback) OnError(index int, err error) {
	for _, cb := range m.callbacks {
		cb.OnError(index, err)
	}
}
