package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/loshunter/HeroByte-sub004/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultEraserWidth = 32
	cfg.LogLevel = "debug"
	cfg.Workers = 6
	cfg.RecentScenes = []string{"/tmp/dungeon.json", "/tmp/tavern.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultEraserWidth != 32 {
		t.Errorf("expected DefaultEraserWidth=32, got %f", loaded.DefaultEraserWidth)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %s", loaded.LogLevel)
	}
	if loaded.Workers != 6 {
		t.Errorf("expected Workers=6, got %d", loaded.Workers)
	}
	if len(loaded.RecentScenes) != 2 {
		t.Errorf("expected 2 recent scenes, got %d", len(loaded.RecentScenes))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultEraserWidth != defaults.DefaultEraserWidth {
		t.Errorf("expected default eraser width %f, got %f", defaults.DefaultEraserWidth, cfg.DefaultEraserWidth)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{"workers":2}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("expected Workers=2, got %d", cfg.Workers)
	}
	if cfg.DefaultEraserWidth != model.DefaultAppConfig().DefaultEraserWidth {
		t.Errorf("missing eraser width should keep the default, got %f", cfg.DefaultEraserWidth)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	cfg := model.DefaultAppConfig()
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigNilRecentScenes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := []byte(`{"default_eraser_width":10,"log_level":"warn","recent_scenes":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentScenes == nil {
		t.Error("RecentScenes should not be nil after loading")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected config.json, got %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".herobyte" {
		t.Errorf("expected config inside .herobyte, got %s", path)
	}
}
