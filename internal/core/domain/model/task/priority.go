package task

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Priority classifies a task as low, medium or high priority.
type Priority int

const (
	// PriorityUnknown catches uninitialized values.
	PriorityUnknown Priority = iota

	PriorityLow
	PriorityMedium
	PriorityHigh
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityLow:    "low",
		PriorityMedium: "medium",
		PriorityHigh:   "high",
	}
}

// PriorityFromString parses "low", "medium" or "high".
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid priority", s))
}

// Validate rejects PriorityUnknown and out-of-range values.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
