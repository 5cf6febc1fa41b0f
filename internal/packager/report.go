package packager

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/plugforge/plugpack/internal/domain"
)

// Reporter renders batch outcomes as human-readable lines, one per target,
// with paths shown relative to the project root where possible.
type Reporter struct {
	Out         io.Writer
	ProjectRoot string
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, projectRoot string) *Reporter {
	return &Reporter{Out: out, ProjectRoot: projectRoot}
}

// Report prints one line per outcome: successes first in batch order, then
// failures with the stage and cause.
func (r *Reporter) Report(batch domain.BatchResult) {
	for _, res := range batch.Results {
		fmt.Fprintf(r.Out, "packaged %s  %s -> %s  (%d bytes, sha256 %s)\n",
			res.BaseName, r.rel(res.AbsolutePath), r.rel(res.OutputPath),
			res.SizeBytes, shortDigest(res.SHA256))
	}
	for _, f := range batch.Failures {
		fmt.Fprintf(r.Out, "failed %s  (%s): %v\n", f.Input, f.Stage, f.Err)
	}
}

// rel shortens p to a project-relative path when p lives under the root.
func (r *Reporter) rel(p string) string {
	if r.ProjectRoot == "" {
		return p
	}
	rel, err := filepath.Rel(r.ProjectRoot, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
