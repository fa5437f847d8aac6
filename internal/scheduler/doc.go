// Package scheduler implements the recurring reminder dispatch loop as
// an explicit tick-driven state machine (Idle -> Dispatching -> Idle),
// so tick overlap, skipped ticks, and shutdown are observable,
// testable transitions rather than framework-managed side effects.
//
// Matching is exact-minute equality between the wall clock and the
// stored reminder time. With a tick interval coarser than one minute a
// reminder whose minute never coincides with a tick is skipped for the
// day; the default one-minute interval visits every minute.
package scheduler
