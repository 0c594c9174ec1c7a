// Package main demonstrates usage of the scg-ingest error package.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/next-trace/scg-ingest/customer"
	"github.com/next-trace/scg-ingest/error"
)

func main() {
	// Raw reader failure, no further context: renders as the dump alone
	e := error.FromSource(&csv.ParseError{StartLine: 7, Line: 7, Column: 1, Err: csv.ErrFieldCount})
	fmt.Println(e)

	// Builder failure tagged with its row, then the loading stage
	_, cause := customer.Build(customer.WithID("12"), customer.WithTerms(customer.TermsCOD))
	err := error.FromBuilder(cause, "row 12").AddContext("loading customers.csv")
	fmt.Println(err)

	// Payment terms decorated inline, then inspected through the kind
	_, perr := error.Try(customer.ParsePaymentTerms("NET45")).Context("parsing PaymentTerms column")
	fmt.Println(perr)

	var pf *error.ParseTermsFailure
	if errors.As(perr, &pf) {
		fmt.Println("bad input:", pf.Description)
	}
}
