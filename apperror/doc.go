// Package apperror provides a production-grade, transport-agnostic error
// type with causal chaining and helpers for querying a chain by kind.
//
// It exposes a single concrete type Error that implements contract.Error and
// integrates with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Stable, machine-facing Kind discriminator with a closed built-in set
//     (NotFound, Validation, Database, Network, Permission, Timeout,
//     Conflict, Unexpected) plus user-defined kinds via Factory
//   - Singly-linked, acyclic cause chain built with Wrap
//   - Kind-aware queries (Is, As, HasTag) that walk any error chain,
//     including foreign errors that merely expose Unwrap
//   - Derived views: Chain, FullStack, Unwind, RootCause, and a recursive
//     JSON shape consumed by logging pipelines
//   - Total conversion of arbitrary failures via FromUnknown, plus
//     TryCatch/TryCatchAsync boundaries producing mo.Result / mo.Future
//
// Every Error is immutable after construction, so concurrent readers need no
// synchronization.
package apperror
