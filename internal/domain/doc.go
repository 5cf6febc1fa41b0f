// Package domain contains the core domain entities and value objects for plugpack.
//
// This package represents the innermost layer of the architecture. It has no
// dependencies on infrastructure concerns (file system, subprocesses, logging)
// and contains only pure business logic.
//
// # Entities
//
//   - [Manifest]: Per-plugin metadata (name, version, opaque extra fields)
//   - [ResolvedTarget]: A user-supplied target string bound to a source directory
//   - [ArchiveSpec]: The derived archive base name and output path
//   - [PackageResult]: The durable record of one successful packaging operation
//   - [BatchRequest] / [BatchResult]: A set of targets and their outcomes
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
