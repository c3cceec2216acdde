package order

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"workshop/internal/pkg/errs"
)

const (
	// MaxNumberBase is the ceiling of the 4-digit base component.
	MaxNumberBase = 9999

	numberPrefix = "OS"
)

// ErrSequenceExhausted is returned when the next order number would exceed
// the representable 4-digit base ceiling.
var ErrSequenceExhausted = errors.New("order number sequence exhausted")

var numberPattern = regexp.MustCompile(`^OS(\d{4})-(\d+)$`)

// Number is the human-readable sequence identifier of an order, formatted as
// "OS{4-digit base}-{revision}", e.g. "OS0001-1". It is allocated once at
// order creation and never changes.
//
// The zero value is invalid; construct through NewNumber, ParseNumber, or
// NextNumber.
type Number struct {
	base     int
	revision int
}

// NewNumber creates a Number from its base and revision components.
// The base must lie in [1, MaxNumberBase] and the revision must be positive.
func NewNumber(base, revision int) (Number, error) {
	if base < 1 || base > MaxNumberBase {
		return Number{}, errs.NewValueIsOutOfRangeError("base", base, 1, MaxNumberBase)
	}
	if revision < 1 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("revision",
			fmt.Errorf("%d is not greater than 0", revision))
	}

	return Number{base: base, revision: revision}, nil
}

// ParseNumber parses the "OS0001-1" wire form back into a Number.
func ParseNumber(s string) (Number, error) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%q does not match OS0000-0 format", s))
	}

	base, err := strconv.Atoi(m[1])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number", err)
	}
	revision, err := strconv.Atoi(m[2])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number", err)
	}

	return NewNumber(base, revision)
}

// NextNumber computes the next collision-free number from the current maxima:
// the highest base across all existing orders and the highest revision among
// orders already sharing the incremented base (0 when none exist).
//
// The read-increment-write cycle around this function is not atomic on its
// own; callers must serialize it (the create-order handler takes a Postgres
// advisory lock for the duration of its transaction).
func NextNumber(maxBase, maxRevisionForNextBase int) (Number, error) {
	if maxBase >= MaxNumberBase {
		return Number{}, ErrSequenceExhausted
	}

	return NewNumber(maxBase+1, maxRevisionForNextBase+1)
}

// Base returns the 4-digit base component.
func (n Number) Base() int {
	return n.base
}

// Revision returns the revision suffix.
func (n Number) Revision() int {
	return n.revision
}

// String formats the number in its canonical "OS0001-1" form.
func (n Number) String() string {
	return fmt.Sprintf("%s%04d-%d", numberPrefix, n.base, n.revision)
}

// IsEqual compares two numbers component-wise.
func (n Number) IsEqual(other Number) bool {
	return n.base == other.base && n.revision == other.revision
}

// Validate rejects the zero value and out-of-range components.
func (n Number) Validate() error {
	_, err := NewNumber(n.base, n.revision)
	return err
}
