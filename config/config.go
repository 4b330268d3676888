package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StoreSQLite = "sqlite"
	StoreJSON   = "json"
)

type Config struct {
	Port              int
	DataDir           string
	Store             string
	ClassifierCmd     string
	ClassifierTimeout time.Duration
	MaxUploadSizeMB   int
	ConsoleCapacity   int
	FFmpegBin         string
	FFprobeBin        string
	Debug             bool
}

func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("ANICLA_PORT", "7891"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANICLA_PORT: %w", err)
	}

	maxUploadSizeMB, err := strconv.Atoi(getEnv("ANICLA_MAX_UPLOAD_MB", "200"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANICLA_MAX_UPLOAD_MB: %w", err)
	}

	consoleCapacity, err := strconv.Atoi(getEnv("ANICLA_CONSOLE_CAPACITY", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANICLA_CONSOLE_CAPACITY: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("ANICLA_CLASSIFIER_TIMEOUT", "2m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANICLA_CLASSIFIER_TIMEOUT: %w", err)
	}

	debug, err := strconv.ParseBool(getEnv("ANICLA_DEBUG", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANICLA_DEBUG: %w", err)
	}

	cfg := &Config{
		Port:              port,
		DataDir:           getEnv("ANICLA_DATA_DIR", defaultDataDir()),
		Store:             getEnv("ANICLA_STORE", StoreSQLite),
		ClassifierCmd:     os.Getenv("ANICLA_CLASSIFIER_CMD"),
		ClassifierTimeout: timeout,
		MaxUploadSizeMB:   maxUploadSizeMB,
		ConsoleCapacity:   consoleCapacity,
		FFmpegBin:         getEnv("ANICLA_FFMPEG", "ffmpeg"),
		FFprobeBin:        getEnv("ANICLA_FFPROBE", "ffprobe"),
		Debug:             debug,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that may also have been overridden by flags.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.MaxUploadSizeMB < 1 {
		return fmt.Errorf("max upload size must be positive, got %d MB", c.MaxUploadSizeMB)
	}
	if c.ConsoleCapacity < 1 {
		return fmt.Errorf("console capacity must be positive, got %d", c.ConsoleCapacity)
	}
	if c.ClassifierTimeout <= 0 {
		return fmt.Errorf("classifier timeout must be positive, got %s", c.ClassifierTimeout)
	}
	switch c.Store {
	case StoreSQLite, StoreJSON:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreSQLite, StoreJSON)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	return nil
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir + string(os.PathSeparator) + "anicla"
	}
	return "data"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
