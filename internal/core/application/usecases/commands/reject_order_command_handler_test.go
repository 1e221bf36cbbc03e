package commands_test

import (
	"context"
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject created order and persist it", func(t *testing.T) {
		aggregate := orderInStatus(t, 42, order.Created)

		repo := &MockOrderRepository{}
		uow := &MockOrderUoW{}
		factory := &MockOrderUoWFactory{}

		factory.On("Create").Return(uow)
		begin := uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		get := repo.On("Get", ctx, 42).Return(aggregate, nil)
		update := repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.HasID(42) && o.Has(order.Rejected)
		})).Return(nil)
		commit := uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)

		mock.InOrder(begin, get, update, commit)

		handler := commands.NewRejectOrderCommandHandler(factory)
		cmd, err := commands.NewRejectOrderCommand(42)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should fail without saving when rejection is refused", func(t *testing.T) {
		tests := []struct {
			name    string
			status  order.Status
			wantErr error
		}{
			{"approved order", order.Approved, order.ErrApprovedOrderCannotBeRejected},
			{"shipped order", order.Shipped, order.ErrShippedOrdersCannotBeRejected},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				aggregate := orderInStatus(t, 42, tt.status)

				repo := &MockOrderRepository{}
				uow := &MockOrderUoW{}
				factory := &MockOrderUoWFactory{}

				factory.On("Create").Return(uow)
				uow.On("Begin", ctx).Return(nil)
				uow.On("OrderRepository").Return(repo)
				repo.On("Get", ctx, 42).Return(aggregate, nil)
				uow.On("Rollback", ctx).Return(nil)

				handler := commands.NewRejectOrderCommandHandler(factory)
				cmd, err := commands.NewRejectOrderCommand(42)
				require.NoError(t, err)

				err = handler.Handle(ctx, cmd)

				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Update", ctx, mock.Anything)
				uow.AssertNotCalled(t, "Commit", ctx)
			})
		}
	})

	t.Run("should fail with improperly constructed command", func(t *testing.T) {
		factory := &MockOrderUoWFactory{}

		handler := commands.NewRejectOrderCommandHandler(factory)
		err := handler.Handle(ctx, commands.RejectOrderCommand{})

		assert.ErrorIs(t, err, commands.ErrRejectOrderCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
