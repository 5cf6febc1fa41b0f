package packager

// Stage identifies where in the per-target pipeline an operation is.
type Stage int

const (
	StageResolving Stage = iota
	StageReadingManifest
	StageArchiving
	StageDone
)

// String returns a human-readable representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageResolving:
		return "resolving"
	case StageReadingManifest:
		return "reading manifest"
	case StageArchiving:
		return "archiving"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}
