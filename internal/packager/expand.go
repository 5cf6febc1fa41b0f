package packager

import (
	"fmt"

	"github.com/plugforge/plugpack/internal/domain"
)

// Expand turns a batch request into the ordered target list to package.
//
// Explicit-list mode uses the caller-supplied list verbatim, duplicates
// included. All-mode discovers every immediate subdirectory of the source
// root, sorted ascending. Combining the modes, or requesting neither, is a
// configuration error reported before any packaging begins.
func (p *Packager) Expand(req domain.BatchRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.All {
		return p.discoverer.Discover()
	}
	if len(req.Targets) == 0 {
		return nil, fmt.Errorf("%w: no targets requested", domain.ErrNoTargetsFound)
	}
	return req.Targets, nil
}
