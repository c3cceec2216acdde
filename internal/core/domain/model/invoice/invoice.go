// Package invoice provides the immutable billing artifact of the engine.
// An invoice aggregates one or more orders' sale values and recomputed hours
// plus ad-hoc extra charges into a single consistent total.
//
// Key business rules:
//   - Totals are computed inside the constructor from the order summaries and
//     extras, never accepted from the caller
//   - Per-order hours are recomputed from closed time sessions at generation
//     time; a cached value on the order is never trusted and an open session
//     never contributes to a finalized invoice
//   - Once created, the orders list is immutable and every referenced order
//     must have transitioned to invoiced in the same transaction
package invoice

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through the NewInvoice or RestoreInvoice factory methods.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")

	// ErrPartialInvoiceFailure is the unwrap target for invoice generations
	// that were rolled back because a referenced order could not transition
	// to invoiced.
	ErrPartialInvoiceFailure = errors.New("invoice generation failed; no order was billed")
)

// PartialInvoiceFailureError reports that invoice generation was aborted
// because the named order could not be marked invoiced. The whole operation
// is rolled back: no invoice exists and no order status changed.
//
// The error unwraps to both ErrPartialInvoiceFailure and the underlying
// cause, so errors.Is matches order.ErrInvalidTransition when that is what
// stopped the transition.
type PartialInvoiceFailureError struct {
	OrderID kernel.UUID
	Cause   error
}

func (e *PartialInvoiceFailureError) Error() string {
	return fmt.Sprintf("invoice generation failed on order %s: %s", e.OrderID, e.Cause)
}

func (e *PartialInvoiceFailureError) Unwrap() []error {
	return []error{ErrPartialInvoiceFailure, e.Cause}
}

// OrderSummary is the immutable per-order line embedded in an invoice:
// the order reference, its sale value, and its authoritative recomputed hours.
type OrderSummary struct {
	OrderID    kernel.UUID
	Number     order.Number
	SaleValue  decimal.Decimal
	TotalHours decimal.Decimal
}

// NewOrderSummary validates and creates an order summary line.
func NewOrderSummary(
	orderID kernel.UUID,
	number order.Number,
	saleValue, totalHours decimal.Decimal,
) (OrderSummary, error) {
	if err := orderID.Validate(); err != nil {
		return OrderSummary{}, err
	}
	if err := number.Validate(); err != nil {
		return OrderSummary{}, err
	}
	if saleValue.IsNegative() {
		return OrderSummary{}, errs.NewValueIsInvalidError("saleValue")
	}
	if totalHours.IsNegative() {
		return OrderSummary{}, errs.NewValueIsInvalidError("totalHours")
	}

	return OrderSummary{
		OrderID:    orderID,
		Number:     number,
		SaleValue:  saleValue,
		TotalHours: totalHours,
	}, nil
}

// ExtraCharge is an ad-hoc charge added to an invoice next to the order lines.
type ExtraCharge struct {
	Description string
	Value       decimal.Decimal
}

// NewExtraCharge validates and creates an extra charge.
func NewExtraCharge(description string, value decimal.Decimal) (ExtraCharge, error) {
	if description == "" {
		return ExtraCharge{}, errs.NewValueIsRequiredError("description")
	}
	return ExtraCharge{Description: description, Value: value}, nil
}

// Invoice is the immutable billing artifact.
type Invoice struct {
	id          kernel.UUID
	clientID    kernel.UUID
	periodStart time.Time
	periodEnd   time.Time
	summaries   []OrderSummary
	extras      []ExtraCharge
	totalValue  decimal.Decimal
	totalTime   decimal.Decimal
	createdAt   time.Time

	isConstructed bool
}

// NewInvoice builds an invoice over the given order summaries and extras.
// Totals are derived here: totalValue is the sum of all sale values plus all
// extra values; totalTime is the sum of all recomputed per-order hours.
func NewInvoice(
	id, clientID kernel.UUID,
	periodStart, periodEnd time.Time,
	summaries []OrderSummary,
	extras []ExtraCharge,
	createdAt time.Time,
) (*Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := clientID.Validate(); err != nil {
		return nil, err
	}
	if periodStart.IsZero() || periodEnd.IsZero() {
		return nil, errs.NewValueIsRequiredError("billing period")
	}
	if periodEnd.Before(periodStart) {
		return nil, errs.NewValueIsInvalidErrorWithCause("billing period",
			errors.New("period end precedes period start"))
	}
	if len(summaries) == 0 {
		return nil, errs.NewValueIsRequiredError("orders")
	}

	totalValue := decimal.Zero
	totalTime := decimal.Zero
	for _, s := range summaries {
		totalValue = totalValue.Add(s.SaleValue)
		totalTime = totalTime.Add(s.TotalHours)
	}
	for _, e := range extras {
		totalValue = totalValue.Add(e.Value)
	}

	inv := &Invoice{
		id:            id,
		clientID:      clientID,
		periodStart:   periodStart,
		periodEnd:     periodEnd,
		summaries:     make([]OrderSummary, len(summaries)),
		extras:        make([]ExtraCharge, len(extras)),
		totalValue:    totalValue,
		totalTime:     totalTime,
		createdAt:     createdAt,
		isConstructed: true,
	}
	copy(inv.summaries, summaries)
	copy(inv.extras, extras)

	return inv, nil
}

// RestoreInvoice reconstructs an invoice from persistence. Totals are
// recomputed from the stored lines; the persisted totals columns are a
// derived cache.
func RestoreInvoice(
	id, clientID kernel.UUID,
	periodStart, periodEnd time.Time,
	summaries []OrderSummary,
	extras []ExtraCharge,
	createdAt time.Time,
) (*Invoice, error) {
	return NewInvoice(id, clientID, periodStart, periodEnd, summaries, extras, createdAt)
}

// Validate ensures the Invoice was constructed through a factory method.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// ClientID returns the billed client reference.
func (i *Invoice) ClientID() kernel.UUID {
	return i.clientID
}

// PeriodStart returns the start of the billing period.
func (i *Invoice) PeriodStart() time.Time {
	return i.periodStart
}

// PeriodEnd returns the end of the billing period.
func (i *Invoice) PeriodEnd() time.Time {
	return i.periodEnd
}

// OrderSummaries returns a copy of the immutable order lines.
func (i *Invoice) OrderSummaries() []OrderSummary {
	out := make([]OrderSummary, len(i.summaries))
	copy(out, i.summaries)
	return out
}

// ExtraCharges returns a copy of the ad-hoc charges.
func (i *Invoice) ExtraCharges() []ExtraCharge {
	out := make([]ExtraCharge, len(i.extras))
	copy(out, i.extras)
	return out
}

// TotalValue returns the sum of all order sale values and extra values.
func (i *Invoice) TotalValue() decimal.Decimal {
	return i.totalValue
}

// TotalTime returns the sum of all orders' recomputed closed-session hours.
func (i *Invoice) TotalTime() decimal.Decimal {
	return i.totalTime
}

// CreatedAt returns the generation instant.
func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

// References reports whether the invoice embeds a summary for the given order.
func (i *Invoice) References(orderID kernel.UUID) bool {
	for _, s := range i.summaries {
		if s.OrderID.IsEqual(orderID) {
			return true
		}
	}
	return false
}
