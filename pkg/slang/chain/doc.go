// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of slang.Result values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/Ensure: transform the value or trigger side effects on success only
// - OrElse: switch to an alternative after a failure
// - Finally: reduce to a concrete value via handlers
//
// A chain short-circuits after the first Err: later steps are skipped and
// the error is carried through to Finally.
package chain
