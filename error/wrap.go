package error

import (
	"errors"
)

// AddContext appends description to the *Error carried by err and returns that *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is or wraps an *Error => that Error gains the entry and is returned,
//     so the result renders the new entry even when err was an outer wrapper
//   - otherwise err is classified as a SourceFailure first, then contextualized
func AddContext(err error, description string) error {
	if err == nil {
		return nil
	}

	if e, ok := As(err); ok {
		return e.AddContext(description)
	}

	return FromSource(err).AddContext(description)
}

// Annotate is AddContext for deferred use on a named error result:
//
//	func load(path string) (err error) {
//		defer ingestError.Annotate(&err, "loading "+path)
//		...
//	}
func Annotate(errp *error, description string) {
	if errp == nil || *errp == nil {
		return
	}

	*errp = AddContext(*errp, description)
}

// As returns the *Error carried by err, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}

	return nil, false
}

// Result holds the outcome of a fallible call so context can be attached
// as a fluent suffix.
type Result[T any] struct {
	Value T
	Err   error
}

// Try captures the two return values of a fallible call:
//
//	terms, err := ingestError.Try(customer.ParsePaymentTerms(s)).Context("parsing PaymentTerms column")
func Try[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

// Context passes a successful value through unchanged, or returns the failure
// with description appended.
func (r Result[T]) Context(description string) (T, error) {
	if r.Err == nil {
		return r.Value, nil
	}

	return r.Value, AddContext(r.Err, description)
}
