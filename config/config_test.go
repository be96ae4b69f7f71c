package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		create   bool
		wantErr  bool
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:   "full_file",
			create: true,
			content: `window:
  title: "viewer"
  width: 640
  height: 480
input:
  bindings: "bindings.yaml"
  deadzone: 0.25
  watch: true
save:
  app: "viewer"
logging:
  level: "debug"
  file: "viewer.log"
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.Title != "viewer" || cfg.Window.Width != 640 || cfg.Window.Height != 480 {
					t.Fatalf("window = %+v", cfg.Window)
				}
				if cfg.Input.Bindings != "bindings.yaml" || cfg.Input.Deadzone != 0.25 || !cfg.Input.Watch {
					t.Fatalf("input = %+v", cfg.Input)
				}
				if cfg.Logging.Level != "debug" || cfg.Logging.File != "viewer.log" {
					t.Fatalf("logging = %+v", cfg.Logging)
				}
			},
		},
		{
			name:    "partial_file_keeps_defaults",
			create:  true,
			content: "window:\n  title: \"only title\"\n",
			validate: func(t *testing.T, cfg *Config) {
				def := Default()
				if cfg.Window.Title != "only title" || cfg.Window.Width != def.Window.Width {
					t.Fatalf("window = %+v", cfg.Window)
				}
				if cfg.Input.Deadzone != def.Input.Deadzone || cfg.Save.App != def.Save.App {
					t.Fatalf("defaults lost: %+v", cfg)
				}
			},
		},
		{
			name: "missing_file_is_default",
			validate: func(t *testing.T, cfg *Config) {
				if *cfg != *Default() {
					t.Fatalf("cfg = %+v", cfg)
				}
			},
		},
		{name: "bad_yaml", create: true, content: "window: [\n", wantErr: true},
		{name: "bad_deadzone", create: true, content: "input:\n  deadzone: 1.5\n", wantErr: true},
		{name: "bad_level", create: true, content: "logging:\n  level: loud\n", wantErr: true},
		{name: "zero_window", create: true, content: "window:\n  width: 0\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.create {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("write: %v", err)
				}
			}
			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if !strings.HasPrefix(err.Error(), "config: ") {
					t.Fatalf("error not prefixed: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	log, closer, err := NewLogger(LoggingConfig{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if log.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info should be filtered at warn")
	}
	log.Warn("stick drift", "pad", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "stick drift") || !strings.Contains(string(data), "pad=1") {
		t.Fatalf("log = %q", data)
	}

	if _, _, err := NewLogger(LoggingConfig{Level: "verbose"}); err == nil {
		t.Fatalf("expected unknown level error")
	}
}
