package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

type Config struct {
	Port string
	Env  string

	// DiscountMode selects the client discount rule: "tiered" (default)
	// or the legacy "flat" rule.
	DiscountMode core.DiscountMode

	// Timeouts
	HTTPReadTimeoutSec    int
	HTTPWriteTimeoutSec   int
	HTTPIdleTimeoutSec    int
	HTTPRequestTimeoutSec int

	// Renewal worker settings
	WorkerIntervalSec int

	// Security settings
	APIKey         string
	AllowedOrigins []string
	RateLimitRPM   int
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "dev")

	switch mode := core.DiscountMode(getEnv("DISCOUNT_MODE", string(core.DiscountModeTiered))); mode {
	case core.DiscountModeTiered, core.DiscountModeFlat:
		cfg.DiscountMode = mode
	default:
		return nil, fmt.Errorf("DISCOUNT_MODE must be %q or %q, got %q",
			core.DiscountModeTiered, core.DiscountModeFlat, mode)
	}

	cfg.HTTPReadTimeoutSec = getEnvAsInt("HTTP_READ_TIMEOUT_SEC", 10)
	cfg.HTTPWriteTimeoutSec = getEnvAsInt("HTTP_WRITE_TIMEOUT_SEC", 10)
	cfg.HTTPIdleTimeoutSec = getEnvAsInt("HTTP_IDLE_TIMEOUT_SEC", 120)
	cfg.HTTPRequestTimeoutSec = getEnvAsInt("HTTP_REQUEST_TIMEOUT_SEC", 30)
	cfg.WorkerIntervalSec = getEnvAsInt("WORKER_INTERVAL_SEC", 60)

	cfg.APIKey = getEnv("API_KEY", "")
	cfg.AllowedOrigins = getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
	cfg.RateLimitRPM = getEnvAsInt("RATE_LIMIT_RPM", 100)

	// In production, API_KEY must be explicitly set
	if cfg.Env == "prod" && cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY is required in production environment")
	}

	// Default API key for development only
	if cfg.APIKey == "" {
		cfg.APIKey = "demo-api-key-12345"
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsSlice(key string, defaultVal []string) []string {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	var result []string
	for _, s := range strings.Split(valStr, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	if len(result) == 0 {
		return defaultVal
	}
	return result
}
