// Package order provides the Order aggregate root of the sales domain and
// the status state machine that governs its lifecycle.
//
// The package includes:
//   - Order: The aggregate root owning line items, currency, and running taxed totals
//   - Status: A state machine answering the approve, reject, and ship intents
//   - Item: A computed, immutable order line
//
// Key business rules:
//   - Status transitions follow Created -> Approved -> Shipped, with
//     Created -> Rejected as the refusal path
//   - Re-approving an approved order and re-rejecting a rejected order are
//     legal no-ops; every other repeated or backward transition fails
//   - The order's total and tax are maintained incrementally as items are
//     added, never recomputed from scratch
//
// The design discipline is tell, don't ask: callers send transition intents
// to the order and the current status alone decides whether they succeed.
package order
