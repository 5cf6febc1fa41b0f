package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PLUGPACK_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("root", os.Getenv("PLUGPACK_PROJECT_ROOT"), &cfg.ProjectRoot)
	s.setString("source-root", os.Getenv("PLUGPACK_SOURCE_ROOT"), &cfg.SourceRoot)
	s.setString("dist-dir", os.Getenv("PLUGPACK_DIST_DIR"), &cfg.DistDir)
	s.setString("manifest", os.Getenv("PLUGPACK_MANIFEST_NAME"), &cfg.ManifestName)
	s.setString("archiver", os.Getenv("PLUGPACK_ARCHIVER_BIN"), &cfg.ArchiverBin)

	if err := s.setDuration("timeout", os.Getenv("PLUGPACK_ARCHIVE_TIMEOUT"), &cfg.ArchiveTimeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("PLUGPACK_WATCH_DEBOUNCE"), &cfg.WatchDebounce); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("PLUGPACK_WATCH"), &cfg.Watch)

	return nil
}
