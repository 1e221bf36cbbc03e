package commands_test

import (
	"context"
	"errors"
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	newCommand := func(t *testing.T) commands.CreateOrderCommand {
		t.Helper()

		salad, err := commands.NewSellItem("salad", 2)
		require.NoError(t, err)
		tomato, err := commands.NewSellItem("tomato", 3)
		require.NoError(t, err)

		cmd, err := commands.NewCreateOrderCommand(1, []commands.SellItem{salad, tomato})
		require.NoError(t, err)
		return cmd
	}

	snapshot := func(t *testing.T) product.Products {
		t.Helper()

		return testCatalogSnapshot(t,
			testProduct(t, "salad", "3.56", "10"),
			testProduct(t, "tomato", "4.65", "10"),
		)
	}

	t.Run("should persist created order with taxed totals", func(t *testing.T) {
		cmd := newCommand(t)

		catalog := &MockProductCatalog{}
		catalog.On("ProductsWith", ctx, []string{"salad", "tomato"}).Return(snapshot(t), nil)

		repo := &MockOrderRepository{}
		uow := &MockOrderUoW{}
		factory := &MockOrderUoWFactory{}

		factory.On("Create").Return(uow)
		begin := uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		add := repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID() == 1 &&
				o.Status() == order.Created &&
				o.Currency() == order.DefaultCurrency &&
				o.Total().String() == "23.20" &&
				o.Tax().String() == "2.13" &&
				len(o.Items()) == 2
		})).Return(nil)
		commit := uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)

		mock.InOrder(begin, add, commit)

		handler := commands.NewCreateOrderCommandHandler(factory, catalog)
		err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		catalog.AssertExpectations(t)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should fail with unresolved product name and never persist", func(t *testing.T) {
		cmd := newCommand(t)

		// Only salad resolves; tomato is missing from the snapshot.
		catalog := &MockProductCatalog{}
		catalog.On("ProductsWith", ctx, []string{"salad", "tomato"}).
			Return(testCatalogSnapshot(t, testProduct(t, "salad", "3.56", "10")), nil)

		factory := &MockOrderUoWFactory{}

		handler := commands.NewCreateOrderCommandHandler(factory, catalog)
		err := handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, product.ErrUnknownProduct)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should fail when catalog resolution fails", func(t *testing.T) {
		cmd := newCommand(t)
		catalogErr := errors.New("catalog unavailable")

		catalog := &MockProductCatalog{}
		catalog.On("ProductsWith", ctx, []string{"salad", "tomato"}).Return(product.Products{}, catalogErr)

		factory := &MockOrderUoWFactory{}

		handler := commands.NewCreateOrderCommandHandler(factory, catalog)
		err := handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, catalogErr)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should roll back when persistence fails", func(t *testing.T) {
		cmd := newCommand(t)
		repoErr := errors.New("insert failed")

		catalog := &MockProductCatalog{}
		catalog.On("ProductsWith", ctx, []string{"salad", "tomato"}).Return(snapshot(t), nil)

		repo := &MockOrderRepository{}
		uow := &MockOrderUoW{}
		factory := &MockOrderUoWFactory{}

		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		repo.On("Add", ctx, mock.Anything).Return(repoErr)
		uow.On("Rollback", ctx).Return(nil)

		handler := commands.NewCreateOrderCommandHandler(factory, catalog)
		err := handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, repoErr)
		uow.AssertNotCalled(t, "Commit", ctx)
		uow.AssertCalled(t, "Rollback", ctx)
	})

	t.Run("should fail with improperly constructed command", func(t *testing.T) {
		catalog := &MockProductCatalog{}
		factory := &MockOrderUoWFactory{}

		handler := commands.NewCreateOrderCommandHandler(factory, catalog)
		err := handler.Handle(ctx, commands.CreateOrderCommand{})

		assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
		catalog.AssertNotCalled(t, "ProductsWith")
	})
}
