package packager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plugforge/plugpack/internal/domain"
	"github.com/plugforge/plugpack/internal/ports"
)

// Clean removes dist artifacts and returns the paths it deleted.
//
// With explicit targets or all-mode it removes the archive each target would
// produce, deriving names the same way packaging does; a target whose
// manifest cannot be read still cleans, using the fallback name. With an
// empty request it removes every archive in the dist directory.
func (p *Packager) Clean(ctx context.Context, req domain.BatchRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.All && len(req.Targets) == 0 {
		return p.cleanAllArtifacts()
	}

	targets, err := p.Expand(req)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, input := range targets {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		target, err := p.resolver.Resolve(input)
		if err != nil {
			p.logger.Warn("skipping unresolvable target", ports.String("target", input), ports.Err(err))
			continue
		}

		// Manifest errors fall back to directory-derived naming so a broken
		// target can still be cleaned.
		manifest, err := p.reader.Read(ctx, target.AbsolutePath)
		if err != nil {
			manifest = domain.Manifest{}
		}

		spec, err := p.archiveSpec(manifest, target.AbsolutePath)
		if err != nil {
			p.logger.Warn("skipping target with unsafe name", ports.String("target", input), ports.Err(err))
			continue
		}

		path, err := p.removeArtifact(spec.OutputPath)
		if err != nil {
			return removed, err
		}
		if path != "" {
			removed = append(removed, path)
		}
	}
	return removed, nil
}

// cleanAllArtifacts removes every archive file in the dist directory.
func (p *Packager) cleanAllArtifacts() ([]string, error) {
	entries, err := os.ReadDir(p.distDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dist directory: %w", err)
	}

	var removed []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ArchiveExt) {
			continue
		}
		path, err := p.removeArtifact(filepath.Join(p.distDir, e.Name()))
		if err != nil {
			return removed, err
		}
		if path != "" {
			removed = append(removed, path)
		}
	}
	return removed, nil
}

// removeArtifact deletes path if it exists, returning the path when a file
// was actually removed.
func (p *Packager) removeArtifact(path string) (string, error) {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("remove artifact %s: %w", path, err)
	}
	p.logger.Info("removed artifact", ports.String("artifact", path))
	return path, nil
}
