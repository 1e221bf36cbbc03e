package commands

import (
	"errors"

	"sales/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents a request to approve an existing order.
// Whether the approval is legal is decided by the order's current status,
// not by this command or its handler.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve the order with the
// given id. Validates that the id is positive.
func NewApproveOrderCommand(orderID int) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ApproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to approve.
func (c ApproveOrderCommand) OrderID() int {
	return c.orderID
}

func (c *ApproveOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
