// Package ports defines the interfaces (ports) that connect the packaging
// orchestrator to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the orchestrator needs from external systems
// without specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [TargetResolver]: Turns a target string into a source directory
//   - [TargetDiscoverer]: Lists packageable directories for all-mode
//   - [ManifestReader]: Loads a plugin's metadata descriptor
//   - [Archiver]: Produces the compressed artifact for a source directory
//   - [Logger]: Structured logging abstraction
//
// The orchestrator (internal/packager) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (file system, subprocess, zerolog).
//
// This separation enables:
//   - Testing orchestrator logic with fake implementations
//   - Swapping the archiving mechanism without changing packaging logic
//   - Clear boundaries and dependency direction
package ports
