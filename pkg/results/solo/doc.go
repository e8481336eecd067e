// Package solo contains single-value, synchronous primitives that operate
// on results.Valued[T]. They form the building blocks for validation
// pipelines where diagnostics accumulate instead of aborting.
//
// Highlights:
// - Succeed/Fail: construct Valued[T]
// - Validate/AndValidate: turn a predicate into an error message
// - Check/ValidateAll: run many validators, accumulating every message or
//   stopping at the first error
// - Switch: move from Valued[In] to Valued[Out], keeping earlier messages
// - Map: transform the value of a valid result
// - Try/FailOnError: call error-returning functions and record errors
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via valid/invalid handlers
//
// Invalid inputs are never handed to callbacks; their messages are passed
// through unchanged.
package solo
