package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultVersion is substituted when a manifest declares no version.
const DefaultVersion = "0.0.0"

// ComposeBaseName derives the archive base name from a manifest and the
// plugin directory it was read from.
//
// The name falls back to the directory basename and the version to
// DefaultVersion. The result is deterministic given the manifest contents
// and the directory path: no timestamps, no random suffixes.
func ComposeBaseName(m Manifest, pluginDir string) string {
	name := m.Name
	if name == "" {
		name = filepath.Base(pluginDir)
	}
	version := m.Version
	if version == "" {
		version = DefaultVersion
	}
	return name + "-" + version
}

// CheckBaseName rejects base names that would place the archive outside the
// dist directory. It does not otherwise sanitize; manifest values are
// expected to be filesystem-safe.
func CheckBaseName(base string) error {
	if base == "" || base == "." || base == ".." {
		return fmt.Errorf("%w: %q", ErrUnsafeArchiveName, base)
	}
	if strings.ContainsAny(base, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrUnsafeArchiveName, base)
	}
	return nil
}
