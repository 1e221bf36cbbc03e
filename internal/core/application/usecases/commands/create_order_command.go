package commands

import (
	"errors"
	"fmt"

	"sales/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrSellItemIsNotConstructed = errors.New(
		"SellItem must be created via NewSellItem constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be at least 1")
	ErrOrderIDIsInvalid      = errors.New("order id must be greater than 0")
	ErrNoItemsRequested      = errors.New("at least one item must be requested")
)

// SellItem is a single requested line in an order creation: a product name
// to be resolved against the catalog, and a quantity of at least 1.
// Quantity validation lives here, on the request carrier, and is not
// re-enforced by the creation handler.
type SellItem struct { //nolint:recvcheck //using for validation
	productName string
	quantity    int

	guard guard.ConstructorGuard
}

// NewSellItem creates a requested order line.
// Validates that the product name is not empty and the quantity is at least 1.
func NewSellItem(productName string, quantity int) (SellItem, error) {
	item := SellItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductName(productName),
		item.setQuantity(quantity),
	); err != nil {
		return SellItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i SellItem) Validate() error {
	return i.guard.Validate(ErrSellItemIsNotConstructed)
}

// ProductName returns the requested catalog name.
func (i SellItem) ProductName() string {
	return i.productName
}

// Quantity returns the requested number of units.
func (i SellItem) Quantity() int {
	return i.quantity
}

func (i *SellItem) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}

	i.productName = productName
	return nil
}

func (i *SellItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, quantity)
	}

	i.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to build a new sales order from
// requested product/quantity pairs.
//
// Example:
//
//	salad, _ := NewSellItem("salad", 2)
//	tomato, _ := NewSellItem("tomato", 3)
//	cmd, err := NewCreateOrderCommand(1, []SellItem{salad, tomato})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int
	items   []SellItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new sales order.
// Validates that the order id is positive and every requested item was
// properly constructed; an empty request is refused.
func NewCreateOrderCommand(orderID int, items []SellItem) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() int {
	return c.orderID
}

// Items returns the requested lines in input order.
func (c CreateOrderCommand) Items() []SellItem {
	return append([]SellItem(nil), c.items...)
}

// ProductNames returns the requested product names in input order, for a
// single catalog resolution call.
func (c CreateOrderCommand) ProductNames() []string {
	names := make([]string, 0, len(c.items))
	for _, item := range c.items {
		names = append(names, item.productName)
	}
	return names
}

func (c *CreateOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []SellItem) error {
	if len(items) == 0 {
		return ErrNoItemsRequested
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]SellItem(nil), items...)
	return nil
}
