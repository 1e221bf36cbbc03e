package commands_test

import (
	"context"
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) ProductsWith(ctx context.Context, names []string) (product.Products, error) {
	args := m.Called(ctx, names)
	return args.Get(0).(product.Products), args.Error(1)
}

type MockShipmentService struct{ mock.Mock }

func (m *MockShipmentService) Ship(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func testProduct(t *testing.T, name, amount, taxPercentage string) product.Product {
	t.Helper()

	m, err := kernel.MoneyFromString(amount)
	require.NoError(t, err)
	rate, err := kernel.TaxPercentageFromString(taxPercentage)
	require.NoError(t, err)
	price, err := product.NewPrice(m, rate)
	require.NoError(t, err)
	p, err := product.NewProduct(name, price)
	require.NoError(t, err)
	return p
}

func testCatalogSnapshot(t *testing.T, products ...product.Product) product.Products {
	t.Helper()

	snapshot, err := product.NewProducts(products)
	require.NoError(t, err)
	return snapshot
}

func orderInStatus(t *testing.T, id int, status order.Status) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(id, status, nil, order.DefaultCurrency, kernel.ZeroMoney(), kernel.ZeroMoney())
	require.NoError(t, err)
	return o
}
