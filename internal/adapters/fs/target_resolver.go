package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plugforge/plugpack/internal/domain"
)

// TargetResolver implements ports.TargetResolver and ports.TargetDiscoverer
// against the local file system.
//
// Resolution accepts both a path relative to the project root (ad-hoc
// locations) and a bare name relative to the source root (the common case),
// with the project-root form taking precedence.
type TargetResolver struct {
	projectRoot string
	sourceRoot  string
}

// NewTargetResolver creates a resolver for the given project and source roots.
func NewTargetResolver(projectRoot, sourceRoot string) *TargetResolver {
	return &TargetResolver{projectRoot: projectRoot, sourceRoot: sourceRoot}
}

// Resolve turns input into a resolved target.
// Returns domain.ErrInvalidTarget for blank input and domain.ErrTargetNotFound,
// naming the original input, when neither candidate directory exists.
func (r *TargetResolver) Resolve(input string) (domain.ResolvedTarget, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return domain.ResolvedTarget{}, fmt.Errorf("%w: empty target", domain.ErrInvalidTarget)
	}

	// Tolerate one trailing separator from shell completion.
	name = strings.TrimSuffix(name, string(os.PathSeparator))

	for _, candidate := range []string{
		filepath.Join(r.projectRoot, name),
		filepath.Join(r.sourceRoot, name),
	} {
		info, err := os.Stat(candidate)
		if err != nil || !info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return domain.ResolvedTarget{}, fmt.Errorf("resolve %s: %w", candidate, err)
		}
		return domain.ResolvedTarget{OriginalInput: input, AbsolutePath: abs}, nil
	}

	return domain.ResolvedTarget{}, fmt.Errorf("%w: %s", domain.ErrTargetNotFound, input)
}

// Discover lists the immediate subdirectories of the source root, sorted
// ascending by name.
// Returns domain.ErrNoTargetsFound when the source root is absent or empty.
func (r *TargetResolver) Discover() ([]string, error) {
	entries, err := os.ReadDir(r.sourceRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: source root %s does not exist", domain.ErrNoTargetsFound, r.sourceRoot)
		}
		return nil, fmt.Errorf("read source root: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: source root %s has no subdirectories", domain.ErrNoTargetsFound, r.sourceRoot)
	}

	sort.Strings(names)
	return names, nil
}
