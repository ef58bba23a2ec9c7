package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mydehq/stampname/internal/types"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *types.Config
		shouldError bool
	}{
		{
			name:        "empty formats",
			cfg:         &types.Config{},
			shouldError: true,
		},
		{
			name:        "blank format",
			cfg:         &types.Config{Formats: []string{"mp4", "."}},
			shouldError: true,
		},
		{
			name:        "path separator",
			cfg:         &types.Config{Formats: []string{"../mp4"}},
			shouldError: true,
		},
		{
			name:        "backslash",
			cfg:         &types.Config{Formats: []string{`a\mp4`}},
			shouldError: true,
		},
		{
			name:        "valid config",
			cfg:         &types.Config{Formats: []string{"mp4", ".MOV"}},
			shouldError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.shouldError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.shouldError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	content := `formats: [mp4, mkv]
self_name: renamer
confirm: true
pause_on_exit: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Formats) != 2 || cfg.Formats[1] != "mkv" {
		t.Errorf("unexpected formats: %v", cfg.Formats)
	}
	if cfg.SelfName != "renamer" {
		t.Errorf("unexpected self name: %s", cfg.SelfName)
	}
	if !cfg.Confirm || !cfg.PauseOnExit {
		t.Errorf("expected confirm and pause_on_exit set: %+v", cfg)
	}
	if cfg.Path != configPath {
		t.Errorf("Path = %s, want %s", cfg.Path, configPath)
	}
}

func TestLoad_TOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	content := `formats = ["mov"]
self_name = "renamer"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "mov" {
		t.Errorf("unexpected formats: %v", cfg.Formats)
	}
	if cfg.SelfName != "renamer" {
		t.Errorf("unexpected self name: %s", cfg.SelfName)
	}
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(configPath, []byte("confirm: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "mp4" {
		t.Errorf("expected default formats, got %v", cfg.Formats)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing custom path", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yml"))
		var notFound types.ErrConfigNotFound
		if !errors.As(err, &notFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yml")
		if err := os.WriteFile(path, []byte("formats: [mp4\n"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		var invalid types.ErrConfigInvalid
		if !errors.As(err, &invalid) {
			t.Errorf("expected ErrConfigInvalid, got %v", err)
		}
	})

	t.Run("empty formats", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yml")
		if err := os.WriteFile(path, []byte("formats: []\n"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		var invalid types.ErrConfigInvalid
		if !errors.As(err, &invalid) {
			t.Errorf("expected ErrConfigInvalid, got %v", err)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		path := filepath.Join(dir, "config.json")
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for .json config")
		}
	})
}

func TestLoad_XDGConfigHome(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`formats = ["webm"]`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Path != path || cfg.Formats[0] != "webm" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestDefaultConfigSideEffects(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.Formats[0] = "MODIFIED"

	cfg2 := DefaultConfig()
	if cfg2.Formats[0] == "MODIFIED" {
		t.Error("cfg2 affected by cfg1 modification! Formats slice was not copied.")
	}
	if defaults.Formats[0] != "mp4" {
		t.Error("package defaults were mutated")
	}
}
