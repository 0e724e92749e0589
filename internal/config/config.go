package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the web server's runtime settings. Scan defaults apply when a
// request omits them; MaxWorkers caps whatever a request asks for.
type Config struct {
	Addr         string
	DefaultPorts string
	ScanTimeout  time.Duration
	ScanWorkers  int
	MaxWorkers   int
}

// Load builds the configuration from a .env file (when present) and the
// environment, falling back to defaults.
func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:         getenv("PORTLY_HTTP_ADDR", ":8080"),
		DefaultPorts: getenv("PORTLY_DEFAULT_PORTS", "1-1024"),
		ScanTimeout:  durationEnv("PORTLY_SCAN_TIMEOUT", 500*time.Millisecond),
		ScanWorkers:  intEnv("PORTLY_SCAN_WORKERS", 100),
		MaxWorkers:   intEnv("PORTLY_MAX_WORKERS", 512),
	}

	if cfg.ScanTimeout <= 0 {
		return nil, fmt.Errorf("scan timeout must be positive, got %s", cfg.ScanTimeout)
	}
	if cfg.ScanWorkers <= 0 {
		return nil, fmt.Errorf("scan workers must be positive, got %d", cfg.ScanWorkers)
	}
	if cfg.MaxWorkers < cfg.ScanWorkers {
		cfg.MaxWorkers = cfg.ScanWorkers
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func intEnv(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}
