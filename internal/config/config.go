package config

import (
	"fmt"
	"slices"

	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
)

// DefaultConfig returns a configuration with sensible defaults for all
// settings.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Engine: EngineConfig{
			Name:      ocr.EngineTesseract,
			Languages: []string{"eng"},
			WholePage: false,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			MaxUploadMB:     50,
			TimeoutSec:      120,
			ShutdownTimeout: 10,
		},
	}
}

// Validate checks the configuration for invalid or inconsistent values.
func (c *Config) Validate() error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of %v", c.LogLevel, validLevels)
	}

	validEngines := []string{ocr.EngineTesseract, ocr.EnginePaddle}
	if !slices.Contains(validEngines, c.Engine.Name) {
		return fmt.Errorf("invalid engine name %q, must be one of %v", c.Engine.Name, validEngines)
	}
	if c.Engine.Name == ocr.EnginePaddle {
		if c.Engine.ModelPath == "" {
			return fmt.Errorf("engine.model_path is required for the paddle engine")
		}
		if c.Engine.DictPath == "" {
			return fmt.Errorf("engine.dict_path is required for the paddle engine")
		}
	}

	validFormats := []string{"text", "json"}
	if !slices.Contains(validFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q, must be one of %v", c.Output.Format, validFormats)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d, must be between 1 and 65535", c.Server.Port)
	}
	if c.Server.MaxUploadMB < 1 {
		return fmt.Errorf("invalid max_upload_mb %d, must be at least 1", c.Server.MaxUploadMB)
	}
	if c.Server.TimeoutSec < 1 {
		return fmt.Errorf("invalid timeout_sec %d, must be at least 1", c.Server.TimeoutSec)
	}

	return nil
}

// ToEngineConfig converts the engine section to the recognition
// package's configuration. Short language codes ("en", "ru") are
// accepted and mapped to tesseract trained-data identifiers.
func (c *Config) ToEngineConfig() ocr.Config {
	langs := make([]string, 0, len(c.Engine.Languages))
	for _, l := range c.Engine.Languages {
		switch l {
		case "en", "ru":
			langs = append(langs, ocr.TesseractLanguage(l))
		default:
			langs = append(langs, l)
		}
	}
	return ocr.Config{
		Name:      c.Engine.Name,
		Languages: langs,
		WholePage: c.Engine.WholePage,
		ModelPath: c.Engine.ModelPath,
		DictPath:  c.Engine.DictPath,
	}
}
