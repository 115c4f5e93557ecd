package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.CodeLength != 6 {
		t.Errorf("expected default code length 6, got %d", cfg.CodeLength)
	}
	if cfg.DBPath != "" {
		t.Errorf("expected archive disabled by default, got %q", cfg.DBPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CODE_LENGTH", "8")
	t.Setenv("DB_PATH", "/tmp/games.db")
	t.Setenv("ALLOWED_ORIGIN", "https://example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.CodeLength != 8 || cfg.DBPath != "/tmp/games.db" || cfg.AllowedOrigin != "https://example.com" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsShortCodes(t *testing.T) {
	t.Setenv("CODE_LENGTH", "2")
	if _, err := Load(); err == nil {
		t.Error("expected an error for CODE_LENGTH=2")
	}
}
