// Package plugpack packages plugin source directories into versioned,
// distributable archives.
//
// Example usage:
//
//	cfg := plugpack.DefaultConfig()
//	cfg.ProjectRoot = "/path/to/project"
//	batch, err := plugpack.Run(context.Background(), cfg, plugpack.BatchRequest{All: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, res := range batch.Results {
//	    fmt.Println(res.OutputPath)
//	}
package plugpack

import (
	"context"

	"github.com/plugforge/plugpack/internal/adapters/exec"
	"github.com/plugforge/plugpack/internal/adapters/fs"
	"github.com/plugforge/plugpack/internal/cliconfig"
	"github.com/plugforge/plugpack/internal/domain"
	"github.com/plugforge/plugpack/internal/packager"
)

// Config holds the configuration for the packaging orchestrator.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// Manifest is the per-plugin metadata descriptor.
type Manifest = domain.Manifest

// BatchRequest selects the targets to package: an explicit ordered list, or
// all-mode discovering every immediate subdirectory of the source root.
type BatchRequest = domain.BatchRequest

// BatchResult carries the per-target outcomes of one run, in list order.
type BatchResult = domain.BatchResult

// PackageResult is the durable record of one successful packaging operation.
type PackageResult = domain.PackageResult

// Sentinel errors returned by Run; check with errors.Is.
var (
	ErrInvalidTarget     = domain.ErrInvalidTarget
	ErrTargetNotFound    = domain.ErrTargetNotFound
	ErrManifestMissing   = domain.ErrManifestMissing
	ErrManifestParse     = domain.ErrManifestParse
	ErrArchiveExecution  = domain.ErrArchiveExecution
	ErrNoTargetsFound    = domain.ErrNoTargetsFound
	ErrConflictingMode   = domain.ErrConflictingMode
	ErrUnsafeArchiveName = domain.ErrUnsafeArchiveName
)

// DefaultConfig returns a Config with sensible default values.
// At minimum, set ProjectRoot before calling Run.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Run validates cfg, expands the request, and packages every target in order
// under the isolate-and-continue policy. Per-target failures are captured in
// the BatchResult; the returned error covers batch-level preconditions and
// cancellation only.
func Run(ctx context.Context, cfg Config, req BatchRequest) (BatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return BatchResult{}, err
	}

	resolver := fs.NewTargetResolver(cfg.ProjectRoot, cfg.SourceRoot)
	reader := fs.NewManifestReader(cfg.ManifestName)
	archiver := exec.NewZipArchiver(cfg.ArchiverBin, cfg.ArchiveTimeout)
	pk := packager.New(cfg.DistDir, resolver, resolver, reader, archiver, nil)

	return pk.Run(ctx, req)
}
