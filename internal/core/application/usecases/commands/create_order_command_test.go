package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSellItem(t *testing.T) {
	t.Run("should create item with valid name and quantity", func(t *testing.T) {
		item, err := commands.NewSellItem("salad", 2)

		require.NoError(t, err)
		assert.NoError(t, item.Validate())
		assert.Equal(t, "salad", item.ProductName())
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		_, err := commands.NewSellItem("", 2)

		assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := commands.NewSellItem("salad", 0)

		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := commands.NewSellItem("salad", -3)

		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should fail validation for zero value item", func(t *testing.T) {
		var item commands.SellItem

		assert.ErrorIs(t, item.Validate(), commands.ErrSellItemIsNotConstructed)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with valid id and items", func(t *testing.T) {
		salad, err := commands.NewSellItem("salad", 2)
		require.NoError(t, err)
		tomato, err := commands.NewSellItem("tomato", 3)
		require.NoError(t, err)

		cmd, err := commands.NewCreateOrderCommand(1, []commands.SellItem{salad, tomato})

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, 1, cmd.OrderID())
		assert.Equal(t, []string{"salad", "tomato"}, cmd.ProductNames())
		assert.Len(t, cmd.Items(), 2)
	})

	t.Run("should fail with non-positive order id", func(t *testing.T) {
		item, err := commands.NewSellItem("salad", 2)
		require.NoError(t, err)

		_, err = commands.NewCreateOrderCommand(0, []commands.SellItem{item})

		assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(1, nil)

		assert.ErrorIs(t, err, commands.ErrNoItemsRequested)
	})

	t.Run("should fail with improperly constructed item", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(1, []commands.SellItem{{}})

		assert.ErrorIs(t, err, commands.ErrSellItemIsNotConstructed)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
