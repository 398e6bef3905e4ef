package config

// Config represents the complete configuration for the scan2docx
// application. It covers the convert, image, and serve commands and
// supports loading from configuration files, environment variables, and
// command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Recognition engine configuration
	Engine EngineConfig `mapstructure:"engine" yaml:"engine" json:"engine"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// EngineConfig contains recognition engine settings.
type EngineConfig struct {
	// Name selects the engine implementation ("tesseract" or "paddle").
	Name string `mapstructure:"name" yaml:"name" json:"name"`
	// Languages is a list of recognition language codes ("eng", "rus").
	Languages []string `mapstructure:"languages" yaml:"languages" json:"languages"`
	// WholePage switches tesseract to whole-page transcription instead
	// of per-line results.
	WholePage bool `mapstructure:"whole_page" yaml:"whole_page" json:"whole_page"`
	// ModelPath and DictPath locate the ONNX recognition model and its
	// character dictionary (paddle engine only).
	ModelPath string `mapstructure:"model_path" yaml:"model_path" json:"model_path"`
	DictPath  string `mapstructure:"dict_path" yaml:"dict_path" json:"dict_path"`
}

// OutputConfig contains output settings for the convert command.
type OutputConfig struct {
	// File is the destination .docx path; empty derives it from the input.
	File string `mapstructure:"file" yaml:"file" json:"file"`
	// PageRange restricts PDF page extraction ("1-5", "1,3,5").
	PageRange string `mapstructure:"page_range" yaml:"page_range" json:"page_range"`
	// Format selects the image command's output ("text" or "json").
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	MaxUploadMB     int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb" json:"max_upload_mb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}
