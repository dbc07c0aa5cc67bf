// Package dispatch runs the deferred portion of an accepted slash command.
//
// The synchronous handler verifies and acknowledges a command, then hands the
// dispatcher a DeferredTask holding its own copies of the command text and the
// one-time callback URL. The dispatcher performs exactly one transform call and
// posts exactly one terminal message (success or failure) to the callback URL,
// independent of the original HTTP response lifecycle.
//
// Execution hosts differ in what deferred-execution guarantee they offer, so
// task submission goes through the Submitter interface:
//   - Tracked: goroutine per task registered on a WaitGroup; shutdown drains
//     in-flight tasks within a grace period
//   - Detached: fire-and-forget goroutine, no completion guarantee
//   - Sync: runs inline on the caller's goroutine, extending response latency
//
// The handler never branches on which submitter is configured; the choice is
// made once at start-up.
//
// Reliability semantics:
//   - Transform errors and timeouts become a Failure post, never silence
//   - A panic inside a task becomes a Failure post
//   - A failed callback POST is logged and not retried; delivery is best-effort
package dispatch
