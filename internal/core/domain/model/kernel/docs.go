// Package kernel provides core domain primitives for the sales system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Money: An exact fixed-point decimal amount with half-up rounding to two fractional digits
//   - TaxPercentage: A tax rate in [0,100] that derives tax amounts from base amounts
//
// These primitives enforce domain invariants and validation rules, ensuring
// that monetary arithmetic is deterministic and free of binary floating
// point drift. They are immutable and thread-safe, making them suitable for
// concurrent use.
package kernel
