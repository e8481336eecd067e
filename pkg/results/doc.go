// Package results provides validation values: outcomes that carry an ordered
// list of warning and error messages, optionally together with a value.
//
// A result is valid as long as it holds no error message. Validity only ever
// goes from true to false as messages are added. Both families share the same
// message handling; Valued[T] adds the carried value.
//
// Key operations:
// - New/Empty/Error/Warning: construct a valueless Result
// - Of/NewValued/EmptyOf/ErrorOf/WarningOf: construct a Valued[T]
// - Add/AddWarning/AddError/AddRange: accumulate messages
// - And: merge two results, left messages first, both always evaluated
// - AndAlso: short-circuit And, the second result is only produced when the
//   first one is valid
// - AndValued/Combine: mix valueless and valued results, aggregate values
// - WithValue/Discard: move between the two families
// - Err/FromError: convert to and from Go errors
//
// Messages are shared by pointer between results and are never copied.
package results
