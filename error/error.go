package error

import (
	"strings"

	"github.com/next-trace/scg-ingest/contract"
)

// Separator joins context entries when an Error is rendered.
const Separator = " -> "

// noContext is rendered when an Error carries no context entries.
const noContext = "no context"

// Error is the contextual error type for customer ingestion.
//
// Fields:
//   - kind:    closed classification of the failure origin
//   - context: stage descriptions in append order (seeded entry first)
type Error struct {
	kind    Kind
	context []string
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

// Error renders the context most recent first, joined by Separator.
// The kind is not rendered separately; its dump is the first seeded entry.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if len(e.context) == 0 {
		return noContext
	}

	var b strings.Builder

	for i := len(e.context) - 1; i >= 0; i-- {
		b.WriteString(e.context[i])

		if i > 0 {
			b.WriteString(Separator)
		}
	}

	return b.String()
}

// Unwrap returns the kind so errors.Is / errors.As can reach it and its cause.
func (e *Error) Unwrap() error {
	if e == nil || e.kind == nil {
		return nil
	}

	return e.kind
}

// ------ getters

func (e *Error) Kind() Kind {
	if e == nil {
		return nil
	}

	return e.kind
}

// Context returns a copy of the context entries in append order.
func (e *Error) Context() []string {
	if e == nil {
		return nil
	}

	return cloneContext(e.context)
}

// ------ fluent helper (chainable, mutates receiver intentionally)

// AddContext appends a description of the calling stage and returns the same
// receiver for chaining. The kind is never touched.
func (e *Error) AddContext(description string) *Error {
	if e == nil {
		return nil
	}

	e.context = append(e.context, description)

	return e
}

func cloneContext(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	out := make([]string, len(in))
	copy(out, in)

	return out
}
