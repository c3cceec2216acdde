package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
	ErrSaleValueIsNegative   = errors.New("sale value must not be negative")
)

// CreateOrderCommand represents a request to open a new fabrication order.
// The order number is not part of the command: it is allocated inside the
// handler's transaction so that concurrent creations never collide.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	clientID    kernel.UUID
	description string
	saleValue   decimal.Decimal
	urgency     order.Urgency
	deadline    *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates identifiers, requires a description, and rejects a negative sale
// value or an unknown urgency.
func NewCreateOrderCommand(
	orderID, clientID kernel.UUID,
	description string,
	saleValue decimal.Decimal,
	urgency order.Urgency,
	deadline *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deadline: deadline,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setDescription(description),
		cmd.setSaleValue(saleValue),
		cmd.setUrgency(urgency),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the client the order is opened for.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Description returns the human-readable work description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// SaleValue returns the agreed sale value of the order.
func (c CreateOrderCommand) SaleValue() decimal.Decimal {
	return c.saleValue
}

// Urgency returns the order's urgency level.
func (c CreateOrderCommand) Urgency() order.Urgency {
	return c.urgency
}

// Deadline returns the optional delivery deadline.
func (c CreateOrderCommand) Deadline() *time.Time {
	return c.deadline
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("clientID", err)
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setSaleValue(saleValue decimal.Decimal) error {
	if saleValue.IsNegative() {
		return ErrSaleValueIsNegative
	}

	c.saleValue = saleValue
	return nil
}

func (c *CreateOrderCommand) setUrgency(urgency order.Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}

	c.urgency = urgency
	return nil
}
