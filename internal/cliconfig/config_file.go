package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	ProjectRoot    string `toml:"project_root"`
	SourceRoot     string `toml:"source_root"`
	DistDir        string `toml:"dist_dir"`
	ManifestName   string `toml:"manifest_name"`
	ArchiverBin    string `toml:"archiver_bin"`
	ArchiveTimeout string `toml:"archive_timeout"`
	WatchDebounce  string `toml:"watch_debounce"`
	Watch          *bool  `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.plugpack/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".plugpack", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("root", fc.ProjectRoot, &cfg.ProjectRoot)
	s.setString("source-root", fc.SourceRoot, &cfg.SourceRoot)
	s.setString("dist-dir", fc.DistDir, &cfg.DistDir)
	s.setString("manifest", fc.ManifestName, &cfg.ManifestName)
	s.setString("archiver", fc.ArchiverBin, &cfg.ArchiverBin)

	if err := s.setDuration("timeout", fc.ArchiveTimeout, &cfg.ArchiveTimeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", fc.WatchDebounce, &cfg.WatchDebounce); err != nil {
		return err
	}

	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
