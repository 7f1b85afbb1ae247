// Package slang provides small algebraic data types for Go: Option for
// presence or absence, Result for success or failure, Atom for fresh identity
// tokens, exhaustive matching over all of them, and a panic boundary
// (SafeTry) that folds failures back into Result values.
//
// Common usage:
// - NewOption/Some/None, Ok/Err: build tagged values
// - Expect, Unwrap().Else(...): consume them with asserted or fallback access
// - MatchOption/MatchResult/MatchAll: branch over variants or open keys
// - SafeTry/Panic: raise and recover library failures
//
// Every misuse failure in this package panics with an Error value carrying a
// fixed message; SafeTry is the intended recovery boundary. For collection
// transposition see the zip subpackage, for fluent Result composition see
// the chain subpackage.
package slang
