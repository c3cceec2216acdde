package postgres

import (
	"workshop/internal/adapters/out/postgres/inventoryrepo"
	"workshop/internal/adapters/out/postgres/invoicerepo"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/sessionrepo"
	"workshop/internal/adapters/out/postgres/taskrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the full schema. On top of what the DTO tags
// describe it creates the partial unique index that enforces at most one
// open session per (task, worker) pair; GORM tags cannot express partial
// indexes.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&taskrepo.TaskDTO{},
		&sessionrepo.SessionDTO{},
		&inventoryrepo.ItemDTO{},
		&inventoryrepo.ConsumptionDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.OrderSummaryDTO{},
		&invoicerepo.ExtraChargeDTO{},
	)
	if err != nil {
		return err
	}

	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_work_sessions_one_open
		ON work_sessions (task_id, worker_id)
		WHERE ended_at IS NULL
	`).Error
}
