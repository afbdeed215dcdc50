// Package order contains the Order aggregate and its value objects: the
// delivery status state machine, the payment method/status pair, the
// price-snapshotted line items, and the customer and business snapshots.
// All mutation goes through aggregate methods so the append-only status
// history and the terminal-state rules cannot be bypassed.
package order
