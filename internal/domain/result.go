package domain

// ArchiveSpec names the artifact one packaging operation will produce.
// BaseName is deterministic given the manifest and target path.
type ArchiveSpec struct {
	// BaseName is "{name}-{version}" per ComposeBaseName.
	BaseName string

	// OutputPath is distDir/BaseName.zip.
	OutputPath string
}

// PackageResult is the durable record of one successful packaging operation.
// It is returned to the caller and never mutated after creation.
type PackageResult struct {
	// OriginalInput is the target string as supplied by the user.
	OriginalInput string

	// AbsolutePath is the resolved source directory.
	AbsolutePath string

	// Manifest is the manifest the archive name was derived from.
	Manifest Manifest

	// BaseName is the archive base name ("{name}-{version}").
	BaseName string

	// OutputPath is the produced archive file.
	OutputPath string

	// SizeBytes is the size of the produced archive.
	SizeBytes int64

	// SHA256 is the hex-encoded digest of the produced archive.
	SHA256 string
}

// TargetFailure attributes one target's error to the pipeline stage it
// occurred in.
type TargetFailure struct {
	// Input is the target string as supplied by the user.
	Input string

	// Stage names the pipeline stage that failed.
	Stage string

	// Err is the underlying error.
	Err error
}

// BatchResult aggregates the per-target outcomes of one batch, in list order.
// Under the isolate-and-continue policy a batch carries both successes and
// failures.
type BatchResult struct {
	Results  []PackageResult
	Failures []TargetFailure
}

// Failed reports whether at least one target failed.
func (r BatchResult) Failed() bool {
	return len(r.Failures) > 0
}
