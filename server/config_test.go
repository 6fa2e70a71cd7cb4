package server

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("default port = %q", cfg.Port)
	}
	if cfg.MaxUploadBytes != defaultMaxUploadBytes {
		t.Fatalf("default upload cap = %d", cfg.MaxUploadBytes)
	}
	if len(cfg.Languages) != 1 || cfg.Languages[0] != "eng" {
		t.Fatalf("default languages = %v", cfg.Languages)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TIMECARD_MAX_UPLOAD_BYTES", "1024")
	t.Setenv("TIMECARD_LANGUAGES", "eng, deu")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Fatalf("upload cap = %d", cfg.MaxUploadBytes)
	}
	if len(cfg.Languages) != 2 || cfg.Languages[1] != "deu" {
		t.Fatalf("languages = %v", cfg.Languages)
	}
}

func TestLoadConfigRejectsBadUploadCap(t *testing.T) {
	t.Setenv("TIMECARD_MAX_UPLOAD_BYTES", "zero")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for non-numeric cap")
	}
}
