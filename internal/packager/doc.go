// Package packager implements the packaging orchestrator.
//
// Each target moves through an independent pipeline of stages:
//
//	Resolving -> ReadingManifest -> Archiving -> Done
//
// with Failed terminal from any stage. Targets are packaged one at a time in
// list order; transitions carry no side effects backward and no state is
// shared between targets.
//
// # Failure isolation
//
// Batches run under an isolate-and-continue policy: every target is
// attempted, each failure is captured with the stage it occurred in, and
// processing of subsequent targets continues regardless. The caller reports
// all outcomes together and exits non-zero when any target failed. One
// broken plugin manifest must not prevent packaging the others.
package packager
