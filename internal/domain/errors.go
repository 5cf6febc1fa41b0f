package domain

import "errors"

// Domain errors represent error conditions in the plugpack domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidTarget is returned when a target string is empty or blank.
	ErrInvalidTarget = errors.New("plugpack: invalid target")

	// ErrTargetNotFound is returned when a target resolves to no existing directory.
	ErrTargetNotFound = errors.New("plugpack: target not found")

	// ErrManifestMissing is returned when a target directory has no manifest file.
	ErrManifestMissing = errors.New("plugpack: manifest missing")

	// ErrManifestParse is returned when a manifest file is not valid structured data.
	ErrManifestParse = errors.New("plugpack: manifest parse failed")

	// ErrArchiveExecution is returned when the external archiver cannot be
	// spawned, exits non-zero, or exceeds its timeout.
	ErrArchiveExecution = errors.New("plugpack: archive execution failed")

	// ErrNoTargetsFound is returned when batch expansion produces no targets.
	ErrNoTargetsFound = errors.New("plugpack: no targets found")

	// ErrConflictingMode is returned when an explicit target list and
	// all-mode are requested together.
	ErrConflictingMode = errors.New("plugpack: explicit targets and all-mode are mutually exclusive")

	// ErrUnsafeArchiveName is returned when a manifest-derived base name would
	// escape the dist directory.
	ErrUnsafeArchiveName = errors.New("plugpack: unsafe archive name")
)
