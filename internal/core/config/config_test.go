package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)
	return home
}

func TestLoadMissingFile(t *testing.T) {
	withHome(t)

	if Exists() {
		t.Fatal("Exists() = true for empty home")
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without a config file")
	}

	cfg := LoadOrDefault()
	if cfg.Language != DefaultLanguage {
		t.Errorf("Language = %q; want %q", cfg.Language, DefaultLanguage)
	}
	if cfg.Server.Port != DefaultServerPort {
		t.Errorf("Server.Port = %d; want %d", cfg.Server.Port, DefaultServerPort)
	}
}

func TestSaveAndLoad(t *testing.T) {
	withHome(t)

	cfg := DefaultConfig()
	cfg.Language = "zh"
	cfg.MultiLink = true
	cfg.Server.APIKey = "secret"
	cfg.Watch.Interval = 250 * time.Millisecond

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Language != "zh" || !got.MultiLink || got.Server.APIKey != "secret" {
		t.Errorf("Load() = %+v; want saved values", got)
	}
	if got.Watch.Interval != 250*time.Millisecond {
		t.Errorf("Watch.Interval = %v; want 250ms", got.Watch.Interval)
	}
}

func TestLoadPartialAppliesDefaults(t *testing.T) {
	withHome(t)

	path, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("multi_link: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.MultiLink {
		t.Error("MultiLink = false; want true")
	}
	if cfg.Language != DefaultLanguage || cfg.Server.Port != DefaultServerPort || cfg.Watch.Interval != DefaultWatchInterval {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	withHome(t)

	if err := Init(); err != nil {
		t.Fatalf("first Init() error: %v", err)
	}
	if err := Init(); err == nil {
		t.Fatal("second Init() succeeded; want already-exists error")
	}
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{key: "language", value: "zh", want: "zh"},
		{key: "language", value: "fr", wantErr: true},
		{key: "multi_link", value: "true", want: "true"},
		{key: "multi_link", value: "maybe", wantErr: true},
		{key: "server.port", value: "9000", want: "9000"},
		{key: "server.port", value: "70000", wantErr: true},
		{key: "server.api_key", value: "k", want: "k"},
		{key: "watch.interval", value: "2s", want: "2s"},
		{key: "watch.interval", value: "-1s", wantErr: true},
		{key: "output_dir", value: "/tmp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Set(%q, %q) succeeded; want error", tt.key, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q) error: %v", tt.key, tt.value, err)
			}
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %q; want %q", tt.key, got, tt.want)
			}
		})
	}
}
