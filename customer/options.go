package customer

import "strings"

// Option sets a Customer field during Build().
type Option func(*Customer)

// WithID sets the customer identifier. Required.
func WithID(id string) Option { return func(c *Customer) { c.ID = strings.TrimSpace(id) } }

// WithName sets the customer's display name. Required.
func WithName(name string) Option { return func(c *Customer) { c.Name = strings.TrimSpace(name) } }

// WithEmail sets the contact address. Optional, validated when present.
func WithEmail(email string) Option { return func(c *Customer) { c.Email = strings.TrimSpace(email) } }

// WithTerms sets the payment terms. Required.
func WithTerms(t PaymentTerms) Option { return func(c *Customer) { c.Terms = t } }

// Build applies opts and validates the result.
// Failures are *BuilderError values matching ErrUninitializedField or ErrInvalidField.
func Build(opts ...Option) (Customer, error) {
	var c Customer
	for _, o := range opts {
		o(&c)
	}

	switch {
	case c.ID == "":
		return Customer{}, &BuilderError{Field: "id", Reason: ErrUninitializedField}
	case c.Name == "":
		return Customer{}, &BuilderError{Field: "name", Reason: ErrUninitializedField}
	case c.Terms == termsUnset:
		return Customer{}, &BuilderError{Field: "payment_terms", Reason: ErrUninitializedField}
	case c.Email != "" && !validEmail(c.Email):
		return Customer{}, &BuilderError{Field: "email", Reason: ErrInvalidField, Value: c.Email}
	}

	if _, ok := termNames[c.Terms]; !ok {
		return Customer{}, &BuilderError{Field: "payment_terms", Reason: ErrInvalidField, Value: c.Terms.String()}
	}

	return c, nil
}

// validEmail only checks for a single '@' with text on both sides.
func validEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}
