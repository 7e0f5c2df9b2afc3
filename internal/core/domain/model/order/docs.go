// Package order contains the Order aggregate and its status state machine.
//
// The aggregate owns the order status field: transitions are validated
// here, and the package reports the Ready edge, the single transition
// that carries fulfillment side effects, to the application layer.
// Everything else (stock counters, delivery records, notifications) reacts
// to what this package decides.
package order
