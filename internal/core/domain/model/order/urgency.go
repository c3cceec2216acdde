package order

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Urgency classifies how quickly an order should move through production.
// It has no effect on the workflow itself; it only informs scheduling done
// by humans.
type Urgency int

const (
	// UrgencyUnknown catches uninitialized values.
	UrgencyUnknown Urgency = iota

	UrgencyLow
	UrgencyMedium
	UrgencyHigh
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyLow:    "low",
		UrgencyMedium: "medium",
		UrgencyHigh:   "high",
	}
}

// UrgencyFromString parses "low", "medium" or "high".
func UrgencyFromString(s string) (Urgency, error) {
	for urgency, str := range getUrgencyStrings() {
		if str == s {
			return urgency, nil
		}
	}
	return UrgencyUnknown, errs.NewValueIsInvalidErrorWithCause("urgency",
		fmt.Errorf("%q is not a valid urgency", s))
}

// Validate rejects UrgencyUnknown and out-of-range values.
func (u Urgency) Validate() error {
	if _, ok := getUrgencyStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("urgency",
			fmt.Errorf("%d is not a valid urgency", u))
	}
	return nil
}

// String returns the lowercase name of the urgency.
func (u Urgency) String() string {
	if str, ok := getUrgencyStrings()[u]; ok {
		return str
	}
	return "unknown"
}
