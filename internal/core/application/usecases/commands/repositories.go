// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TaskRepoFactory provides access to the task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (creation, assignment, manual workflow transitions).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TaskUoW manages transactions for task CRUD, which also needs the
	// owning order for existence and billing-lock checks.
	TaskUoW interface {
		TxManager
		TaskRepoFactory
		OrderRepoFactory
	}

	// TaskUoWFactory creates new task unit of work instances.
	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// WorkUoW manages transactions that span orders, tasks and work
	// sessions: session open/close, task status writes and the derived
	// order-status recomputation that follows them.
	WorkUoW interface {
		TxManager
		OrderRepoFactory
		TaskRepoFactory
		SessionRepoFactory
	}

	// WorkUoWFactory creates new work unit of work instances.
	WorkUoWFactory interface {
		Create() WorkUoW
	}

	// InventoryUoW manages transactions for stock operations; material
	// consumption also reads the consuming task.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
		TaskRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// BillingUoW manages transactions for invoice generation and deletion:
	// the invoice write and every order transition commit or roll back
	// together, and hours are recomputed from sessions in the same tx.
	BillingUoW interface {
		TxManager
		InvoiceRepoFactory
		OrderRepoFactory
		SessionRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// UoW manages transactions across all aggregates. Used by the deletion
	// commands, which cascade across orders, tasks, sessions, the
	// consumption ledger and the invoice reference guard.
	UoW interface {
		TxManager
		OrderRepoFactory
		TaskRepoFactory
		SessionRepoFactory
		InventoryRepoFactory
		InvoiceRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
