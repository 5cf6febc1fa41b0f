package domain

// ResolvedTarget binds a user-supplied target string to a concrete source
// directory. AbsolutePath always refers to an existing directory whose
// contents (not the directory entry itself) become the archive payload.
type ResolvedTarget struct {
	// OriginalInput is the target string exactly as the user supplied it.
	OriginalInput string

	// AbsolutePath is the resolved source directory.
	AbsolutePath string
}

// BatchRequest describes which targets one orchestrator invocation should
// package: either an explicit ordered list, or all-mode meaning every
// immediate subdirectory of the source root.
type BatchRequest struct {
	// Targets is the explicit ordered target list. Duplicates are allowed
	// and not deduplicated.
	Targets []string

	// All requests discovery of every immediate subdirectory of the source
	// root, sorted ascending by name.
	All bool
}

// Validate reports a configuration error when explicit targets and all-mode
// are combined. The two modes are mutually exclusive.
func (r BatchRequest) Validate() error {
	if r.All && len(r.Targets) > 0 {
		return ErrConflictingMode
	}
	return nil
}
