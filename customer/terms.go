package customer

import (
	"fmt"
	"strings"

	ingestError "github.com/next-trace/scg-ingest/error"
)

// PaymentTerms is the agreed payment schedule for a customer.
type PaymentTerms int

const (
	termsUnset PaymentTerms = iota
	TermsNet30
	TermsNet60
	TermsCOD
)

var termNames = map[PaymentTerms]string{
	TermsNet30: "NET30",
	TermsNet60: "NET60",
	TermsCOD:   "COD",
}

func (t PaymentTerms) String() string {
	if name, ok := termNames[t]; ok {
		return name
	}

	return fmt.Sprintf("PaymentTerms(%d)", int(t))
}

// ParsePaymentTerms parses NET30, NET60 or COD, ignoring case and surrounding
// whitespace. Failures are ParseTermsFailure errors naming the input.
func ParsePaymentTerms(s string) (PaymentTerms, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NET30":
		return TermsNet30, nil
	case "NET60":
		return TermsNet60, nil
	case "COD":
		return TermsCOD, nil
	}

	return termsUnset, ingestError.ParseTerms(fmt.Sprintf("expected one of NET30/NET60/COD, got '%s'", s))
}
