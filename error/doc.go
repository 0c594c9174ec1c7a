// Package error provides the contextual error type used while ingesting customer records.
//
// It exposes a single concrete type Error that implements contract.Error. An Error owns
// exactly one Kind, the closed classification of where a failure came from, and an
// append-only list of human-readable context entries describing the stages the failure
// travelled through.
//
// Key characteristics:
//   - Closed Kind set: SourceFailure, BuilderFailure, ParseTermsFailure
//   - Conversions seed the context with a textual dump of the raw failure
//   - AddContext appends a stage description and returns the same value
//   - Error() renders the context most recent first, joined by " -> "
//   - Unwrap exposes the Kind (and through it the raw cause) to errors.Is / errors.As
//
// Call sites decorate failures inline with AddContext, Annotate (deferred) or
// Try(...).Context(...), so no explicit success/failure branching is needed.
package error
