package ports

import (
	"context"

	"github.com/plugforge/plugpack/internal/domain"
)

// ManifestReader loads the metadata descriptor of a plugin directory.
// Implementations perform no schema validation beyond treating name and
// version as optional strings; every other field passes through opaquely.
type ManifestReader interface {
	// Read loads the manifest from pluginDir.
	// Returns domain.ErrManifestMissing when no manifest file exists and
	// domain.ErrManifestParse when the file is not valid structured data.
	Read(ctx context.Context, pluginDir string) (domain.Manifest, error)
}
