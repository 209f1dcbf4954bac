package logger

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig holds the logging settings
type LogConfig struct {
	// trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// json, text
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"both"`

	// Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"` // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"` // days
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"`

	// Paths
	LogPath   string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile   string `env:"LOG_APP_FILE" envDefault:"app.log"`
	AuditFile string `env:"LOG_AUDIT_FILE" envDefault:"audit.log"`
	ErrorFile string `env:"LOG_ERROR_FILE" envDefault:"error.log"`

	// Filters, comma separated, empty or * = everything
	FilterModules     string `env:"LOG_FILTER_MODULES" envDefault:"*"`
	FilterCollections string `env:"LOG_FILTER_COLLECTIONS" envDefault:"*"`
	FilterMethods     string `env:"LOG_FILTER_METHODS" envDefault:"*"`
	FilterLevels      string `env:"LOG_FILTER_LEVELS" envDefault:"*"`
}

// DefaultConfig returns the default configuration adjusted by GO_ENV and LOG_* variables
func DefaultConfig() *LogConfig {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	config := &LogConfig{
		Level:             "info",
		Format:            "text",
		Output:            "both",
		MaxSize:           100,
		MaxBackups:        7,
		MaxAge:            7,
		Compress:          true,
		LogPath:           "./logs",
		AppFile:           "app.log",
		AuditFile:         "audit.log",
		ErrorFile:         "error.log",
		FilterModules:     "*",
		FilterCollections: "*",
		FilterMethods:     "*",
		FilterLevels:      "*",
	}

	switch env {
	case "development":
		config.Level = "debug"
	case "test":
		config.Level = "warn"
		config.Output = "stdout"
	default:
		config.Format = "json"
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		config.Output = strings.ToLower(output)
	}

	if v, err := strconv.Atoi(os.Getenv("LOG_MAX_SIZE")); err == nil && v > 0 {
		config.MaxSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("LOG_MAX_BACKUPS")); err == nil && v >= 0 {
		config.MaxBackups = v
	}
	if v, err := strconv.Atoi(os.Getenv("LOG_MAX_AGE")); err == nil && v > 0 {
		config.MaxAge = v
	}
	if v, err := strconv.ParseBool(os.Getenv("LOG_COMPRESS")); err == nil {
		config.Compress = v
	}

	if logPath := os.Getenv("LOG_PATH"); logPath != "" {
		config.LogPath = logPath
	}
	if appFile := os.Getenv("LOG_APP_FILE"); appFile != "" {
		config.AppFile = appFile
	}
	if auditFile := os.Getenv("LOG_AUDIT_FILE"); auditFile != "" {
		config.AuditFile = auditFile
	}
	if errorFile := os.Getenv("LOG_ERROR_FILE"); errorFile != "" {
		config.ErrorFile = errorFile
	}

	if v := os.Getenv("LOG_FILTER_MODULES"); v != "" {
		config.FilterModules = v
	}
	if v := os.Getenv("LOG_FILTER_COLLECTIONS"); v != "" {
		config.FilterCollections = v
	}
	if v := os.Getenv("LOG_FILTER_METHODS"); v != "" {
		config.FilterMethods = v
	}
	if v := os.Getenv("LOG_FILTER_LEVELS"); v != "" {
		config.FilterLevels = v
	}

	return config
}
