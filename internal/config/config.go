package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	ImageFetchTimeout  time.Duration
	OCRTimeout         time.Duration
	MaxRequestBodySize int64

	// OCR engine settings
	TesseractPaths []string
	OCRLanguages   string
	OCRMaxGrid     int
	OCREarlyStop   int

	// Backing model settings
	ModelsDir          string
	ModelsContainerURL string
	AzureAccountName   string
	AzureAccountKey    string

	// When > 0, analyzer confidences are perturbed by a seeded noise
	// source with this amplitude. Zero keeps the pipeline deterministic.
	ConfidenceJitter float64
	JitterSeed       int64
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 60*time.Second),
		ImageFetchTimeout:  parseDurationOrDefault("IMAGE_FETCH_TIMEOUT", 15*time.Second),
		OCRTimeout:         parseDurationOrDefault("OCR_TIMEOUT", 45*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 16*1024*1024), // 16MB
		TesseractPaths:     parseListOrDefault("TESSERACT_PATHS", []string{"tesseract"}),
		OCRLanguages:       getEnvOrDefault("OCR_LANGUAGES", "ind+eng"),
		OCRMaxGrid:         int(parseIntOrDefault("OCR_MAX_GRID", 32)),
		OCREarlyStop:       int(parseIntOrDefault("OCR_EARLY_STOP_SCORE", 4000)),
		ModelsDir:          getEnvOrDefault("MODELS_DIR", "models"),
		ModelsContainerURL: getEnvOrDefault("MODELS_CONTAINER_URL", ""),
		AzureAccountName:   getEnvOrDefault("AZURE_STORAGE_ACCOUNT", ""),
		AzureAccountKey:    getEnvOrDefault("AZURE_STORAGE_KEY", ""),
		ConfidenceJitter:   parseFloatOrDefault("CONFIDENCE_JITTER", 0),
		JitterSeed:         parseIntOrDefault("JITTER_SEED", 1),
	}

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.RequestTimeout <= 0 || cfg.ImageFetchTimeout <= 0 || cfg.OCRTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, fetch=%s, ocr=%s)",
			cfg.RequestTimeout, cfg.ImageFetchTimeout, cfg.OCRTimeout)
	}
	if cfg.OCRMaxGrid <= 0 {
		return nil, fmt.Errorf("OCR_MAX_GRID must be > 0 (got %d)", cfg.OCRMaxGrid)
	}
	if cfg.ConfidenceJitter < 0 {
		return nil, fmt.Errorf("CONFIDENCE_JITTER must be >= 0 (got %g)", cfg.ConfidenceJitter)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func parseListOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
