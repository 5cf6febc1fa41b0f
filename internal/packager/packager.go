package packager

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	logadapter "github.com/plugforge/plugpack/internal/adapters/log"
	"github.com/plugforge/plugpack/internal/domain"
	"github.com/plugforge/plugpack/internal/ports"
)

// ArchiveExt is the file extension of produced artifacts.
const ArchiveExt = ".zip"

// Packager orchestrates packaging operations over the injected ports.
// It holds no per-target state; every entity involved in an operation is
// created, consumed, and discarded within that operation.
type Packager struct {
	resolver   ports.TargetResolver
	discoverer ports.TargetDiscoverer
	reader     ports.ManifestReader
	archiver   ports.Archiver
	distDir    string
	logger     ports.Logger
}

// New creates a Packager writing artifacts into distDir.
// A nil logger defaults to a no-op logger.
func New(distDir string, resolver ports.TargetResolver, discoverer ports.TargetDiscoverer,
	reader ports.ManifestReader, archiver ports.Archiver, logger ports.Logger) *Packager {
	if logger == nil {
		logger = logadapter.NewNoopLogger()
	}
	return &Packager{
		resolver:   resolver,
		discoverer: discoverer,
		reader:     reader,
		archiver:   archiver,
		distDir:    distDir,
		logger:     logger,
	}
}

// Package runs the full pipeline for a single target.
func (p *Packager) Package(ctx context.Context, input string) (domain.PackageResult, error) {
	result, _, err := p.packageOne(ctx, input)
	return result, err
}

// Run expands the request into a target list and packages each target in
// order under the isolate-and-continue policy. The returned BatchResult
// carries successes and failures in list order.
//
// Run returns an error only for batch-level preconditions (conflicting
// modes, empty expansion, cancellation between targets); per-target errors
// are captured in the result instead.
func (p *Packager) Run(ctx context.Context, req domain.BatchRequest) (domain.BatchResult, error) {
	targets, err := p.Expand(req)
	if err != nil {
		return domain.BatchResult{}, err
	}

	var batch domain.BatchResult
	for _, input := range targets {
		// Cancellation takes effect between targets, never mid-archive.
		if err := ctx.Err(); err != nil {
			return batch, err
		}

		result, stage, err := p.packageOne(ctx, input)
		if err != nil {
			p.logger.Error("packaging failed",
				ports.String("target", input),
				ports.String("stage", stage.String()),
				ports.Err(err))
			batch.Failures = append(batch.Failures, domain.TargetFailure{
				Input: input,
				Stage: stage.String(),
				Err:   err,
			})
			continue
		}
		batch.Results = append(batch.Results, result)
	}
	return batch, nil
}

// packageOne walks a single target through the pipeline and reports the
// stage any failure occurred in.
func (p *Packager) packageOne(ctx context.Context, input string) (domain.PackageResult, Stage, error) {
	target, err := p.resolver.Resolve(input)
	if err != nil {
		return domain.PackageResult{}, StageResolving, err
	}

	manifest, err := p.reader.Read(ctx, target.AbsolutePath)
	if err != nil {
		return domain.PackageResult{}, StageReadingManifest, err
	}

	spec, err := p.archiveSpec(manifest, target.AbsolutePath)
	if err != nil {
		return domain.PackageResult{}, StageArchiving, err
	}

	p.logger.Debug("archiving",
		ports.String("target", input),
		ports.String("source", target.AbsolutePath),
		ports.String("output", spec.OutputPath))

	if err := p.archiver.Archive(ctx, target.AbsolutePath, spec.OutputPath); err != nil {
		return domain.PackageResult{}, StageArchiving, err
	}

	digest, size, err := fileDigest(spec.OutputPath)
	if err != nil {
		return domain.PackageResult{}, StageArchiving, fmt.Errorf("inspect artifact: %w", err)
	}

	result := domain.PackageResult{
		OriginalInput: input,
		AbsolutePath:  target.AbsolutePath,
		Manifest:      manifest,
		BaseName:      spec.BaseName,
		OutputPath:    spec.OutputPath,
		SizeBytes:     size,
		SHA256:        digest,
	}

	p.logger.Info("packaged",
		ports.String("target", input),
		ports.String("artifact", spec.OutputPath),
		ports.Int64("bytes", size))
	return result, StageDone, nil
}

// archiveSpec composes the artifact name and guards it against escaping the
// dist directory. It performs no filesystem mutation.
func (p *Packager) archiveSpec(manifest domain.Manifest, pluginDir string) (domain.ArchiveSpec, error) {
	base := domain.ComposeBaseName(manifest, pluginDir)
	if err := domain.CheckBaseName(base); err != nil {
		return domain.ArchiveSpec{}, err
	}
	return domain.ArchiveSpec{
		BaseName:   base,
		OutputPath: filepath.Join(p.distDir, base+ArchiveExt),
	}, nil
}

// fileDigest returns the hex-encoded sha256 and size of the file at path.
func fileDigest(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), size, nil
}
