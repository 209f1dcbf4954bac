package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the server
type Configuration struct {
	Environment string `env:"GO_ENV" envDefault:"development"` // development, staging, production
	Address     string `env:"ADDRESS" envDefault:"8080"`       // Port the server listens on

	// Database
	DatabaseDriver        string `env:"DATABASE_DRIVER" envDefault:"mongo"` // mongo | memory
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"fullsco"`
	MongoDB_EnsureIndexes bool   `env:"MONGODB_ENSURE_INDEXES" envDefault:"true"` // Create unique indexes from model tags at boot

	// HTTP
	CORS_Origins          string        `env:"CORS_ORIGINS" envDefault:"*"`               // Comma separated, * = all
	CORS_AllowCredentials bool          `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Only honoured with explicit origins
	RateLimit_Max         int           `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Requests per window (0 = off)
	RateLimit_Window      int           `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Seconds
	RateLimit_Enabled     bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"` // Upper bound for store calls of one request
	BodyLimitMB           int           `env:"BODY_LIMIT_MB" envDefault:"10"`

	// Files
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`        // Where media uploads are written
	SeedFile  string `env:"SEED_FILE" envDefault:"config/seed/seed.yaml"` // Empty disables seeding

	// Background jobs
	MediaCleanup_Interval time.Duration `env:"MEDIA_CLEANUP_INTERVAL" envDefault:"1h"` // 0 disables the orphaned upload sweep
	MediaCleanup_Grace    time.Duration `env:"MEDIA_CLEANUP_GRACE" envDefault:"1h"`    // Uploads younger than this are kept

	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// IsMemoryStore reports whether the in-memory store replaces MongoDB
func (c *Configuration) IsMemoryStore() bool {
	return c.DatabaseDriver == "memory"
}

// getEnvPath returns the env file for the current GO_ENV
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// logger may not be initialised yet
		fmt.Printf("Cannot get current directory: %v\n", err)
		return ""
	}

	// Walk up until a config/env directory shows up
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// ProjectRoot returns the directory that contains config/env, or the working directory
func ProjectRoot() string {
	if envPath := getEnvPath(); envPath != "" {
		return filepath.Dir(filepath.Dir(filepath.Dir(envPath)))
	}
	wd, _ := os.Getwd()
	return wd
}

// ResolvePath makes a relative path absolute against the project root
func ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ProjectRoot(), path)
}

// NewConfig reads the env file (if any) and parses the process environment into a Configuration.
// Variables already present in the environment win over the file.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	cfg, err := env.ParseAs[Configuration]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DatabaseDriver != "mongo" && cfg.DatabaseDriver != "memory" {
		return nil, fmt.Errorf("unknown DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	return &cfg, nil
}
