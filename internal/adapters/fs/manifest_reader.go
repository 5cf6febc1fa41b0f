package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plugforge/plugpack/internal/domain"
)

// DefaultManifestName is the manifest filename used when none is configured.
const DefaultManifestName = "manifest.json"

// ManifestReader implements ports.ManifestReader by reading a structured-data
// file from the plugin directory. Files named *.yaml or *.yml are parsed as
// YAML, everything else as JSON.
type ManifestReader struct {
	filename string
}

// NewManifestReader creates a reader for the given manifest filename.
// An empty filename selects DefaultManifestName.
func NewManifestReader(filename string) *ManifestReader {
	if filename == "" {
		filename = DefaultManifestName
	}
	return &ManifestReader{filename: filename}
}

// Read loads the manifest from pluginDir.
// Returns domain.ErrManifestMissing when the file does not exist and
// domain.ErrManifestParse when it is not syntactically valid.
func (r *ManifestReader) Read(ctx context.Context, pluginDir string) (domain.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return domain.Manifest{}, err
	}

	path := filepath.Join(pluginDir, r.filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrManifestMissing, path)
		}
		return domain.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	raw := map[string]any{}
	if isYAML(r.filename) {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("%w: %s: %v", domain.ErrManifestParse, path, err)
	}

	m := domain.Manifest{Extra: raw}
	if name, ok := raw["name"].(string); ok {
		m.Name = name
		delete(raw, "name")
	}
	if version, ok := raw["version"].(string); ok {
		m.Version = version
		delete(raw, "version")
	}
	return m, nil
}

func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
