package error_test

import (
	"encoding/csv"
	"errors"
	"fmt"

	ingestError "github.com/next-trace/scg-ingest/error"
)

func ExampleFromSource() {
	err := ingestError.FromSource(&csv.ParseError{StartLine: 7, Line: 7, Column: 1, Err: csv.ErrFieldCount})
	fmt.Println(err)
	// Output: record on line 7: wrong number of fields
}

func ExampleError_AddContext() {
	err := ingestError.FromBuilder(errors.New("customer: name must be initialized"), "row 12").
		AddContext("loading customers.csv")
	fmt.Println(err)
	// Output: loading customers.csv -> row 12 -> customer: name must be initialized
}

func ExampleAnnotate() {
	parseRow := func() (err error) {
		defer ingestError.Annotate(&err, "parsing PaymentTerms column")
		return ingestError.ParseTerms("expected one of NET30/NET60/COD, got 'NET45'")
	}

	fmt.Println(parseRow())
	// Output: parsing PaymentTerms column -> expected one of NET30/NET60/COD, got 'NET45'
}
