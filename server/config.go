package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries the environment-driven settings of the HTTP shell.
type Config struct {
	// Port the server listens on.
	Port string
	// MaxUploadBytes caps the accepted image payload size.
	MaxUploadBytes int64
	// Languages are the OCR language hints passed to the analyzer.
	Languages []string
}

const defaultMaxUploadBytes = 10 << 20

// LoadConfig reads configuration from the environment, applying defaults for
// anything unset.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:           "8080",
		MaxUploadBytes: defaultMaxUploadBytes,
		Languages:      []string{"eng"},
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if raw := os.Getenv("TIMECARD_MAX_UPLOAD_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid TIMECARD_MAX_UPLOAD_BYTES %q", raw)
		}
		cfg.MaxUploadBytes = n
	}
	if raw := os.Getenv("TIMECARD_LANGUAGES"); raw != "" {
		var langs []string
		for _, l := range strings.Split(raw, ",") {
			if l = strings.TrimSpace(l); l != "" {
				langs = append(langs, l)
			}
		}
		if len(langs) > 0 {
			cfg.Languages = langs
		}
	}
	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}
