// Package order provides the service-order aggregate of the workshop engine.
// An order is the unit of billable work for a client; it moves through a fixed
// production workflow from creation to invoicing.
//
// The package includes:
//   - Order: the aggregate root carrying identity, client reference, money and
//     workflow state
//   - Status: the state machine that validates every workflow transition
//   - Number: the human-readable sequence identifier ("OS0001-1")
//   - Urgency: the low/medium/high priority classification
//
// Key business rules:
//   - Status transitions are one-directional along the production workflow;
//     an invalid source state fails with InvalidTransitionError and mutates
//     nothing
//   - Production, QualityControl and Stopped are partly derived states,
//     recomputed from the order's tasks and work sessions rather than trusted
//     as caller input (see the services package)
//   - Worker assignment is manual and independent of the workflow position
//   - Once invoiced, an order is immutable for billing purposes
package order
