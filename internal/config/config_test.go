package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected development environment, got %q", cfg.Environment)
	}
	if cfg.DBPath != filepath.Join("database", "meteorites.db") {
		t.Errorf("expected local db path, got %q", cfg.DBPath)
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("expected addr :3000, got %q", cfg.Addr())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8090")
	t.Setenv("IMAGES_DIR", "/srv/photos")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 8090 {
		t.Errorf("expected port 8090, got %d", cfg.Port)
	}
	if cfg.ImagesDir != "/srv/photos" {
		t.Errorf("expected images dir override, got %q", cfg.ImagesDir)
	}
}

func TestLoadProductionDBPath(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/data/meteorites.db" {
		t.Errorf("expected production db path, got %q", cfg.DBPath)
	}
}

func TestLoadExplicitDBPath(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_PATH", "/tmp/test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("expected DB_PATH to win, got %q", cfg.DBPath)
	}
}
