package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr      = ":8080"
	DefaultRateLimit = 5.0 // requests per second per client
	DefaultRateBurst = 10
)

// Server holds the HTTP API settings
type Server struct {
	Addr      string
	RateLimit float64
	RateBurst int
	LogLevel  string
}

// LoadServer reads the server settings from the environment after loading
// the given .env files (".env" when none are named). Missing files are ignored.
func LoadServer(envFiles ...string) (Server, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Server{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Server{
		Addr:      getEnv("PURLIN_ADDR", DefaultAddr),
		RateLimit: DefaultRateLimit,
		RateBurst: DefaultRateBurst,
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
	}

	if v := os.Getenv("PURLIN_RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil || limit <= 0 {
			return Server{}, fmt.Errorf("PURLIN_RATE_LIMIT must be a positive number, got %q", v)
		}
		cfg.RateLimit = limit
	}
	if v := os.Getenv("PURLIN_RATE_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return Server{}, fmt.Errorf("PURLIN_RATE_BURST must be a positive integer, got %q", v)
		}
		cfg.RateBurst = burst
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
