package domain

// Manifest holds the metadata descriptor of a single plugin directory.
// Only Name and Version are interpreted; every other field is carried in
// Extra untouched for reporting or future use.
//
// A Manifest is loaded fresh per packaging operation and never cached.
type Manifest struct {
	// Name is the plugin name. Optional; the directory basename is used
	// when empty.
	Name string

	// Version is the plugin version. Optional; "0.0.0" is used when empty.
	Version string

	// Extra contains all remaining manifest fields, passed through opaquely.
	Extra map[string]any
}
