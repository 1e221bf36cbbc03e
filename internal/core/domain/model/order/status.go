package order

import (
	"errors"
	"fmt"

	"sales/internal/pkg/errs"
)

// One sentinel error per forbidden transition edge. Use cases never branch
// on the current status; they attempt the transition and propagate whichever
// of these the status raises.
var (
	ErrApprovedOrderCannotBeRejected = errors.New("approved orders cannot be rejected")
	ErrRejectedOrderCannotBeApproved = errors.New("rejected orders cannot be approved")
	ErrShippedOrdersCannotBeApproved = errors.New("shipped orders cannot be approved")
	ErrShippedOrdersCannotBeRejected = errors.New("shipped orders cannot be rejected")
	ErrOrderNotReadyForShipment      = errors.New("order is not ready for shipment")
	ErrOrderCannotBeShippedTwice     = errors.New("order cannot be shipped twice")
)

// Status represents the lifecycle state of a sales order.
// It implements a state machine in which each state decides for itself how
// to answer the three transition intents (tell, don't ask): callers never
// inspect the status and branch on it, they invoke ToApproved, ToRejected,
// or ToShipped and let the current state accept or refuse.
//
// State transitions:
//
//	Created ──┬──> Approved ──> Shipped
//	          │
//	          └──> Rejected
//
// Re-approving an Approved order and re-rejecting a Rejected order are legal
// no-ops; every other repeated or backward transition fails with the
// matching sentinel error.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first built.
	// Orders in this status can be approved or rejected.
	Created

	// Approved indicates the order passed review and awaits shipment.
	Approved

	// Rejected indicates the order was refused. Rejected orders can never
	// be approved or shipped.
	Rejected

	// Shipped indicates the order left the warehouse. This is a final
	// state with no further transitions allowed.
	Shipped
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Created:  "Created",
		Approved: "Approved",
		Rejected: "Rejected",
		Shipped:  "Shipped",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:  "Created",
		Approved: "Approved",
		Rejected: "Rejected",
		Shipped:  "Shipped",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Approved, Rejected, Shipped.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ToApproved answers the approval intent.
//
// Valid transitions:
//   - Created -> Approved
//   - Approved -> Approved (idempotent no-op)
//
// Invalid transitions:
//   - Rejected -> fails with ErrRejectedOrderCannotBeApproved
//   - Shipped -> fails with ErrShippedOrdersCannotBeApproved
func (s Status) ToApproved() (Status, error) {
	switch s {
	case Created, Approved:
		return Approved, nil
	case Rejected:
		return 0, ErrRejectedOrderCannotBeApproved
	case Shipped:
		return 0, ErrShippedOrdersCannotBeApproved
	default:
		return 0, s.Validate()
	}
}

// ToRejected answers the rejection intent.
//
// Valid transitions:
//   - Created -> Rejected
//   - Rejected -> Rejected (idempotent no-op)
//
// Invalid transitions:
//   - Approved -> fails with ErrApprovedOrderCannotBeRejected
//   - Shipped -> fails with ErrShippedOrdersCannotBeRejected
func (s Status) ToRejected() (Status, error) {
	switch s {
	case Created, Rejected:
		return Rejected, nil
	case Approved:
		return 0, ErrApprovedOrderCannotBeRejected
	case Shipped:
		return 0, ErrShippedOrdersCannotBeRejected
	default:
		return 0, s.Validate()
	}
}

// ToShipped answers the shipment intent.
//
// Valid transitions:
//   - Approved -> Shipped
//
// Invalid transitions:
//   - Created, Rejected -> fails with ErrOrderNotReadyForShipment
//   - Shipped -> fails with ErrOrderCannotBeShippedTwice
func (s Status) ToShipped() (Status, error) {
	switch s {
	case Approved:
		return Shipped, nil
	case Created, Rejected:
		return 0, ErrOrderNotReadyForShipment
	case Shipped:
		return 0, ErrOrderCannotBeShippedTwice
	default:
		return 0, s.Validate()
	}
}

// IsTransitionError reports whether err is one of the illegal-transition
// sentinel errors. API layers use it to translate domain refusals into
// conflict responses without enumerating the edges themselves.
func IsTransitionError(err error) bool {
	for _, sentinel := range []error{
		ErrApprovedOrderCannotBeRejected,
		ErrRejectedOrderCannotBeApproved,
		ErrShippedOrdersCannotBeApproved,
		ErrShippedOrdersCannotBeRejected,
		ErrOrderNotReadyForShipment,
		ErrOrderCannotBeShippedTwice,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
