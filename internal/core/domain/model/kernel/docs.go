// Package kernel contains shared value objects used across all domain
// aggregates of the workshop engine.
//
// The package provides:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//
// Worker and client identities are carried through the engine as opaque
// kernel.UUID references; the engine never resolves them to user records.
package kernel
