// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the workflow engine. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - StatusReconciler: recomputes an order's production-phase status from the
//     state of its tasks and open work sessions
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
