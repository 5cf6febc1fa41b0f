package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				ProjectRoot:    "/proj",
				SourceRoot:     "plugins",
				DistDir:        "build",
				ManifestName:   "manifest.yaml",
				ArchiverBin:    "7z",
				ArchiveTimeout: "5m",
				WatchDebounce:  "1s",
				Watch:          &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				ProjectRoot:    "/proj",
				SourceRoot:     "plugins",
				DistDir:        "build",
				ManifestName:   "manifest.yaml",
				ArchiverBin:    "7z",
				ArchiveTimeout: 5 * time.Minute,
				WatchDebounce:  time.Second,
				Watch:          true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				ProjectRoot: "/from/file",
				ArchiverBin: "7z",
			},
			changed: map[string]bool{"root": true},
			initial: Config{
				ProjectRoot: "/from/flag",
			},
			expected: Config{
				ProjectRoot: "/from/flag", // unchanged because flag was set
				ArchiverBin: "7z",
			},
		},
		{
			name: "invalid duration",
			fileConfig: FileConfig{
				ArchiveTimeout: "not-a-duration",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
project_root = "/proj"
source_root = "plugins"
manifest_name = "manifest.yaml"
archiver_bin = "7z"
archive_timeout = "2m"
watch = true
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() unexpected error: %v", err)
	}

	if fc.ProjectRoot != "/proj" {
		t.Errorf("ProjectRoot = %q, want /proj", fc.ProjectRoot)
	}
	if fc.SourceRoot != "plugins" {
		t.Errorf("SourceRoot = %q, want plugins", fc.SourceRoot)
	}
	if fc.ManifestName != "manifest.yaml" {
		t.Errorf("ManifestName = %q, want manifest.yaml", fc.ManifestName)
	}
	if fc.ArchiverBin != "7z" {
		t.Errorf("ArchiverBin = %q, want 7z", fc.ArchiverBin)
	}
	if fc.ArchiveTimeout != "2m" {
		t.Errorf("ArchiveTimeout = %q, want 2m", fc.ArchiveTimeout)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Error("Watch = nil/false, want true")
	}
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}
}

func TestLoadFileConfigInvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(configPath, []byte("project_root = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}
