package packager

import (
	"context"

	"github.com/plugforge/plugpack/internal/domain"
)

// ValidationResult is the outcome of checking one target without archiving.
type ValidationResult struct {
	// Input is the target string as supplied by the user.
	Input string

	// AbsolutePath is the resolved source directory, when resolution succeeded.
	AbsolutePath string

	// BaseName is the archive name the target would produce.
	BaseName string

	// Err is non-nil when the target would fail to package.
	Err error
}

// Validate runs resolution, manifest reading and name composition for every
// target in the request, without invoking the archiver or touching the dist
// directory. Outcomes are collected per target under the same
// isolate-and-continue policy as Run.
func (p *Packager) Validate(ctx context.Context, req domain.BatchRequest) ([]ValidationResult, error) {
	targets, err := p.Expand(req)
	if err != nil {
		return nil, err
	}

	results := make([]ValidationResult, 0, len(targets))
	for _, input := range targets {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, p.validateOne(ctx, input))
	}
	return results, nil
}

func (p *Packager) validateOne(ctx context.Context, input string) ValidationResult {
	vr := ValidationResult{Input: input}

	target, err := p.resolver.Resolve(input)
	if err != nil {
		vr.Err = err
		return vr
	}
	vr.AbsolutePath = target.AbsolutePath

	manifest, err := p.reader.Read(ctx, target.AbsolutePath)
	if err != nil {
		vr.Err = err
		return vr
	}

	spec, err := p.archiveSpec(manifest, target.AbsolutePath)
	if err != nil {
		vr.Err = err
		return vr
	}
	vr.BaseName = spec.BaseName
	return vr
}
