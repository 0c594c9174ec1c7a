// Package customer defines the customer record produced by ingestion, its
// payment terms and the builder that validates it.
package customer

import (
	"errors"
	"fmt"
)

var (
	// ErrUninitializedField is matched by BuilderErrors for missing required fields.
	ErrUninitializedField = errors.New("must be initialized")
	// ErrInvalidField is matched by BuilderErrors for fields with invalid values.
	ErrInvalidField = errors.New("invalid value")
)

// Customer is a validated customer record.
type Customer struct {
	ID    string
	Name  string
	Email string
	Terms PaymentTerms
}

// BuilderError reports why Build could not produce a Customer.
type BuilderError struct {
	Field  string
	Reason error
	Value  string
}

func (e *BuilderError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("customer: %s: %v %q", e.Field, e.Reason, e.Value)
	}

	return fmt.Sprintf("customer: %s %v", e.Field, e.Reason)
}

func (e *BuilderError) Unwrap() error { return e.Reason }
