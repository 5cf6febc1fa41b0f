// Package exec provides the subprocess-backed archiver adapter.
package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"path/filepath"
	"time"

	"github.com/plugforge/plugpack/internal/domain"
)

// DefaultBin is the archiver binary used when none is configured.
const DefaultBin = "zip"

// ZipArchiver implements ports.Archiver by spawning an external zip-style
// binary with the working directory set to the source directory, so the
// directory contents (not a wrapping folder) become the archive payload.
//
// The subprocess's stdout and stderr stream through to the configured
// writers live, so archiver progress is visible as it happens.
type ZipArchiver struct {
	bin     string
	timeout time.Duration

	// Stdout and Stderr receive the subprocess output. Defaults to the
	// process's own stdout/stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewZipArchiver creates an archiver around the given binary.
// An empty bin selects DefaultBin; timeout 0 disables the bound.
func NewZipArchiver(bin string, timeout time.Duration) *ZipArchiver {
	if bin == "" {
		bin = DefaultBin
	}
	return &ZipArchiver{
		bin:     bin,
		timeout: timeout,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Archive compresses the contents of sourceDir into outputPath.
//
// The parent output directory is created if absent and a pre-existing file
// at outputPath is removed first, making re-runs replace the prior artifact.
// Archiving is attempted at most once; on any failure or cancellation the
// partial output file is discarded.
func (a *ZipArchiver) Archive(ctx context.Context, sourceDir, outputPath string) error {
	out, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.Remove(out); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale artifact: %w", err)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, a.bin, "-r", out, ".")
	cmd.Dir = sourceDir
	cmd.Stdout = a.Stdout
	cmd.Stderr = a.Stderr

	if err := cmd.Run(); err != nil {
		// Never leave a partial artifact behind.
		_ = os.Remove(out)

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s timed out after %v", domain.ErrArchiveExecution, a.bin, a.timeout)
		}
		if errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("%w: %s canceled", domain.ErrArchiveExecution, a.bin)
		}
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with code %d", domain.ErrArchiveExecution, a.bin, exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %v", domain.ErrArchiveExecution, err)
	}
	return nil
}
