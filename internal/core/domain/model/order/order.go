package order

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"
)

// DefaultCurrency is the currency new orders are denominated in.
// Currency conversion is out of scope; an order keeps its currency for life.
const DefaultCurrency = "EUR"

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

// Order is the aggregate root of the sales domain. It owns its line items and
// its status, and maintains running totals over the items.
//
// Order follows these invariants:
//   - total is always the sum of every item's taxed amount, tax the sum of
//     every item's tax amount, maintained incrementally on each Add
//   - the status is only ever replaced by delegating to the current status's
//     transition methods, never set directly
//   - can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id int

	// status is current state in the order lifecycle; it alone decides
	// which transitions are legal
	status Status

	// items holds the computed lines in the order they were added
	items []Item

	// currency denominates total and tax
	currency string

	// total is the running sum of the items' taxed amounts
	total kernel.Money

	// tax is the running sum of the items' tax amounts
	tax kernel.Money

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a fresh Order in the Created state with no items and
// zero totals, denominated in DefaultCurrency.
//
// Parameters:
//   - id: Unique identifier for the order (must be positive)
//
// Returns:
//   - *Order: The created order if validation passes
//   - error: Validation error if the id is invalid
func NewOrder(id int) (*Order, error) {
	order := &Order{
		status:        Created,
		currency:      DefaultCurrency,
		total:         kernel.ZeroMoney(),
		tax:           kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rehydrates an Order from persistence with its stored status,
// items, and totals. The totals are trusted as persisted; they were derived
// incrementally when the items were added.
//
// This constructor validates all inputs, including that the stored status is
// a valid lifecycle state.
func RestoreOrder(
	id int,
	status Status,
	items []Item,
	currency string,
	total kernel.Money,
	tax kernel.Money,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
		order.setItems(items),
		order.setCurrency(currency),
		order.setTotals(total, tax),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's lines in the order they were added.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Currency returns the currency the order's totals are denominated in.
func (o *Order) Currency() string {
	return o.currency
}

// Total returns the running tax-inclusive total over all items.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Tax returns the running tax sum over all items.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// HasID reports whether the order carries exactly the given identifier.
func (o *Order) HasID(id int) bool {
	return o.id == id
}

// Has reports whether the order is currently in the given status.
func (o *Order) Has(status Status) bool {
	return o.status == status
}

// Add appends a computed line for the given product and quantity, and
// increments the running total by the line's taxed amount and the running
// tax by the line's tax amount. Totals are never recomputed from scratch.
//
// Add carries no status precondition; callers are expected to add items only
// while building an order during creation.
func (o *Order) Add(p product.Product, quantity int) error {
	item, err := NewItem(p, quantity)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.total = o.total.Add(item.TaxedAmount())
	o.tax = o.tax.Add(item.TaxAmount())
	return nil
}

// Approve asks the current status to answer the approval intent.
// On success the new status is the sole mutation; items and totals are
// untouched. On failure the status is left unchanged and the status's
// error propagates.
func (o *Order) Approve() error {
	newStatus, err := o.status.ToApproved()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject asks the current status to answer the rejection intent.
// Mutation and failure semantics match Approve.
func (o *Order) Reject() error {
	newStatus, err := o.status.ToRejected()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship asks the current status to answer the shipment intent.
// Mutation and failure semantics match Approve.
func (o *Order) Ship() error {
	newStatus, err := o.status.ToShipped()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setStatus validates and sets the order's lifecycle status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems validates and sets the order's lines.
// This is a private method used only during restoration.
func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

// setCurrency validates and sets the order's currency.
// This is a private method used only during restoration.
func (o *Order) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	o.currency = currency
	return nil
}

// setTotals validates and sets the order's running totals.
// This is a private method used only during restoration.
func (o *Order) setTotals(total, tax kernel.Money) error {
	if err := errors.Join(total.Validate(), tax.Validate()); err != nil {
		return err
	}
	o.total = total
	o.tax = tax
	return nil
}
