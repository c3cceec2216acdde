// Package inventory provides the stock ledger: inventory items with a
// non-negative quantity, and the consumption records that pair every
// decrement with the task that drew the material down.
//
// Key business rules:
//   - An item's quantity never goes negative; a consumption that would drive
//     it below zero fails atomically with InsufficientStockError, leaving both
//     the item and the record set unchanged
//   - Every decrement is paired with a consumption record for traceability
//   - The decrement is re-checked against the latest stock value at execution
//     time by the persistence adapter (conditional update), never against a
//     value cached earlier in the caller's flow
package inventory

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrInsufficientStock is the unwrap target for failed consumptions.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a consumption that would drive an item's
// quantity negative. Nothing is mutated.
type InsufficientStockError struct {
	ItemID    kernel.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: item %s has %d, requested %d",
		e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Item is a stocked material with a non-negative quantity and a unit
// purchase price.
type Item struct {
	id        kernel.UUID
	name      string
	quantity  int
	unitPrice decimal.Decimal

	isConstructed bool
}

// NewItem creates an Item with its initial stock.
func NewItem(id kernel.UUID, name string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(id kernel.UUID, name string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	return NewItem(id, name, quantity, unitPrice)
}

// Validate ensures the Item was constructed through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the current stock level.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit purchase price.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Restock adds inbound stock.
func (i *Item) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity += quantity
	return nil
}

// Consume draws down stock. The persistence adapter enforces the same
// precondition with a conditional update; this in-memory check exists so the
// aggregate is never observable in an invalid state.
func (i *Item) Consume(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > i.quantity {
		return &InsufficientStockError{ItemID: i.id, Requested: quantity, Available: i.quantity}
	}

	i.quantity -= quantity
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	i.unitPrice = unitPrice
	return nil
}
