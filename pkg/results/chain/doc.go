// Package chain provides a fluent wrapper around results.Valued[T]
// for building synchronous validation chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Valued[T] or value
// - Then/ThenTry/Map/Validate: same-type steps, skipped once the chain is invalid
// - ThenTo/MapTo: steps that change the value type
// - And: append another result's messages, always evaluated
// - AndAlso: append another result's messages only while still valid
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
