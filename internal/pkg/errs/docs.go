// Package errs defines the error taxonomy shared by the domain model,
// use cases and adapters.
//
// Every error class pairs a sentinel (ErrValueIsRequired, ErrObjectNotFound,
// ErrConflict, ...) with a struct carrying the offending parameter name, the
// identifier or value involved and an optional cause. Constructors come in
// plain and WithCause variants; Unwrap always yields the sentinel so callers
// branch with errors.Is instead of matching message text.
//
// The classes in use:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError for
//     constructor and command validation failures
//   - ObjectNotFoundError for lookups that miss
//   - ResourceConflictError for resources claimed by a competing transaction
//     (busy vehicles, unavailable drivers, duplicate keys)
//   - VersionIsInvalidError for aggregate version mismatches
//
// The HTTP layer maps these onto responses: not-found to 404, conflict to
// 409, validation failures to 400.
package errs
