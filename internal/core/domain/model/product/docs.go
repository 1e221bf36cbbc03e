// Package product provides the catalog side of the sales domain: prices
// with tax rates, the products they belong to, and validated catalog
// snapshots used during order creation.
//
// The package includes:
//   - Price: A base amount plus a tax percentage, deriving unit and per-quantity taxed amounts
//   - Product: A named, immutable catalog entry
//   - Products: An order-preserving snapshot that rejects construction when any entry is unresolved
//
// All types are immutable value objects compared structurally. The tax
// arithmetic rounds half-up to two fractional digits once per derived value:
// first at the unit level, then again after multiplying by quantity.
package product
