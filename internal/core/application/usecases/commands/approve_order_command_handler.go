package commands

import (
	"context"
)

// ApproveOrderCommandHandler orchestrates order approval: load the order,
// tell it to approve itself, persist the result. The transition call happens
// strictly before the save, so a refused approval aborts the use case and
// nothing is persisted.
//
// Example:
//
//	handler := NewApproveOrderCommandHandler(uowFactory)
//	cmd, _ := NewApproveOrderCommand(42)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrRejectedOrderCannotBeApproved):
//	    log.Println("Order was already rejected")
//	case err != nil:
//	    log.Printf("Approval failed: %v", err)
//	}
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveOrderCommandHandler creates a handler for order approval operations.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// Loads the order (not-found fails loudly with errs.ObjectNotFoundError),
// delegates the transition to the aggregate, and updates it on success.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Approve(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
