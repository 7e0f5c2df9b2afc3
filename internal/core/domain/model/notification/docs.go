// Package notification contains the append-only audit rows written after a
// committed transition, and the Event type the transition commands return
// for post-commit fan-out. Keeping the event list explicit keeps the core
// transactionally pure: nothing in here ever runs inside the fulfillment
// transaction.
package notification
