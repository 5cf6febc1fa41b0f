package ports

import "github.com/plugforge/plugpack/internal/domain"

// TargetResolver turns a user-supplied target string into a concrete source
// directory.
type TargetResolver interface {
	// Resolve returns the resolved target for the given input.
	// Returns domain.ErrInvalidTarget for blank input and
	// domain.ErrTargetNotFound when no candidate directory exists.
	Resolve(input string) (domain.ResolvedTarget, error)
}

// TargetDiscoverer lists targets for all-mode batch expansion.
type TargetDiscoverer interface {
	// Discover returns the names of every immediate subdirectory of the
	// source root, sorted ascending.
	// Returns domain.ErrNoTargetsFound when the source root is absent or
	// holds no directories.
	Discover() ([]string, error)
}
