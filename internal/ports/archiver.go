package ports

import "context"

// Archiver produces the compressed artifact for a resolved source directory.
// Implementations must be idempotent: a pre-existing file at outputPath is
// replaced, never merged into.
type Archiver interface {
	// Archive recursively compresses the contents of sourceDir (not a
	// wrapping top-level folder) into outputPath, creating the parent
	// directory as needed.
	// Archiving is attempted at most once; spawn failures, non-zero exits
	// and timeouts are reported as domain.ErrArchiveExecution.
	Archive(ctx context.Context, sourceDir, outputPath string) error
}
