// Package search holds the pieces every mazepath strategy shares: the
// parent-pointer Tree and its path reconstruction, the Result and Snapshot
// types, the Observer contract, functional options, and the Stepper that
// threads reporting, pacing and cooperative cancellation through each
// expansion.
//
// Per-expansion contract
//
//	pop cell → append to Explored → Observer(explored, pathToCell) →
//	checkpoint → sleep Delay (interruptible) → checkpoint → goal test → expand
//
// The observer is called after every expansion and before the goal test,
// so on success the last report already contains the goal in both slices.
// The engine waits for the observer to return before continuing.
//
// Cancellation
//
//	Cancelling Options.Ctx stops the run at the next checkpoint. The strategy
//	returns the partial Result (explored so far plus the best path to the last
//	expanded cell) together with ctx.Err(). Checkpoints sit at step boundaries
//	only; an expansion in progress is never interrupted.
//
// Observer failure
//
//	An error returned by the observer aborts the run. The partial result is
//	discarded (nil Result) and the error is returned wrapped in ErrObserver.
//
// Options:
//
//   - WithContext(ctx)   cancellation and deadlines; nil keeps Background.
//   - WithObserver(fn)   per-expansion progress callback.
//   - WithDelay(d)       pause after each report; 0 means no pause, d < 0 is
//     rejected with ErrOptionViolation.
package search
