package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config collects everything the server needs from the environment. It is
// built once in main and injected; handlers never read env vars themselves.
type Config struct {
	Port      string        // APP_PORT
	BaseURL   string        // API_BACKEND, base for derived file URLs
	DBDriver  string        // DB_DRIVER: postgres (default) or sqlite
	DSN       string        // DB_DSN
	PublicDir string        // PUBLIC_DIR, root of the served upload dirs
	SessTTL   time.Duration // SESS_DAYS, session cookie lifetime
	LogDir    string        // LOG_DIR, enables rotated file logging when set
	LogLevel  string        // LOG_LEVEL
}

func loadConfig() Config {
	cfg := Config{
		Port:      envOr("APP_PORT", "5000"),
		BaseURL:   envOr("API_BACKEND", "http://localhost:5000"),
		DBDriver:  envOr("DB_DRIVER", "postgres"),
		DSN:       os.Getenv("DB_DSN"),
		PublicDir: envOr("PUBLIC_DIR", "public"),
		LogDir:    os.Getenv("LOG_DIR"),
		LogLevel:  envOr("LOG_LEVEL", "info"),
	}
	days := 7
	if v := os.Getenv("SESS_DAYS"); v != "" {
		if d, err := strconv.Atoi(v); err == nil && d > 0 {
			days = d
		}
	}
	cfg.SessTTL = time.Duration(days) * 24 * time.Hour
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
