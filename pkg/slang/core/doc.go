// Package core contains the deferred obligation checker that the slang
// unwrap chains are built on. It does not define business logic; it provides
// the bookkeeping for handles that owe a follow-up call: Require records a
// pending obligation, Fulfill discharges it, and a handle dropped while still
// pending is reported through the process-wide miss handler.
//
// Reporting is best-effort lint, not a correctness guarantee. Misses surface
// either when the garbage collector reclaims the abandoned handle, or
// deterministically via Settle at a turn boundary.
package core
