// Package contract declares the interface of an ingestion error that carries
// an ordered stack of stage descriptions.
//
// Consumers render the stack through Error(), read it through Context() and
// reach the failure classification through Unwrap().
package contract

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Render Error() purely from the accumulated context, most recent first.
//   - Ensure Context() returns a defensive copy (never the internal slice).
//   - Support errors.Unwrap via Unwrap(), exposing the failure classification.
type Error interface {
	error
	// Context returns a defensive copy in append order; NEVER return the internal slice directly.
	Context() []string
	Unwrap() error
}
