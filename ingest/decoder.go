// Package ingest reads customer records from CSV input.
//
// Every failure leaving this package is an *ingestError.Error whose context
// names the stages it passed through, for example:
//
//	loading customers.csv -> row 3 -> parsing PaymentTerms column -> expected one of NET30/NET60/COD, got 'NET45'
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/next-trace/scg-ingest/customer"
	ingestError "github.com/next-trace/scg-ingest/error"
)

// Header column names, matched case-insensitively.
const (
	ColumnID    = "id"
	ColumnName  = "name"
	ColumnEmail = "email"
	ColumnTerms = "payment_terms"
)

var (
	// ErrMissingHeader is reported when the input has no header row.
	ErrMissingHeader = errors.New("missing header row")
	// ErrMissingColumn is reported when a required header column is absent.
	ErrMissingColumn = errors.New("missing required column")
)

// columns holds the record index of each known column; email is -1 when absent.
type columns struct {
	id, name, email, terms int
}

// Decoder reads customers one record at a time. It is not safe for concurrent use.
type Decoder struct {
	r       *csv.Reader
	logger  *zap.Logger
	metrics *Metrics

	cols   columns
	header bool
	// headerErr is the raw header failure, re-converted on every call.
	headerErr error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{
		r:      csv.NewReader(r),
		logger: zap.NewNop(),
	}
	d.r.TrimLeadingSpace = true

	for _, o := range opts {
		o(d)
	}

	return d
}

// Next returns the next customer, or io.EOF once the input is exhausted.
func (d *Decoder) Next() (customer.Customer, error) {
	if err := d.readHeader(); err != nil {
		return customer.Customer{}, err
	}

	rec, err := d.r.Read()
	if errors.Is(err, io.EOF) {
		return customer.Customer{}, io.EOF
	}

	d.metrics.recordRead()

	if err != nil {
		d.metrics.recordRejected()
		return customer.Customer{}, ingestError.FromSource(err)
	}

	line, _ := d.r.FieldPos(0)

	c, err := d.decodeRecord(rec, fmt.Sprintf("row %d", line))
	if err != nil {
		d.metrics.recordRejected()
		return customer.Customer{}, err
	}

	d.logger.Debug("decoded customer", zap.Int("line", line), zap.String("id", c.ID))

	return c, nil
}

// All drains the decoder. It stops at the first failure.
func (d *Decoder) All() ([]customer.Customer, error) {
	var out []customer.Customer

	for {
		c, err := d.Next()
		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return nil, err
		}

		out = append(out, c)
	}
}

func (d *Decoder) readHeader() error {
	if d.header {
		if d.headerErr != nil {
			return ingestError.FromSource(d.headerErr)
		}

		return nil
	}

	d.header = true

	rec, err := d.r.Read()
	if errors.Is(err, io.EOF) {
		err = &csv.ParseError{StartLine: 1, Line: 1, Err: ErrMissingHeader}
	}

	if err == nil {
		d.cols, err = resolveColumns(rec)
	}

	if err != nil {
		d.headerErr = err
		return ingestError.FromSource(err)
	}

	d.logger.Debug("resolved header", zap.Strings("columns", rec))

	return nil
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{id: -1, name: -1, email: -1, terms: -1}

	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case ColumnID:
			cols.id = i
		case ColumnName:
			cols.name = i
		case ColumnEmail:
			cols.email = i
		case ColumnTerms:
			cols.terms = i
		}
	}

	required := []struct {
		name string
		idx  int
	}{
		{ColumnID, cols.id},
		{ColumnName, cols.name},
		{ColumnTerms, cols.terms},
	}

	for _, r := range required {
		if r.idx < 0 {
			return cols, &csv.ParseError{
				StartLine: 1,
				Line:      1,
				Err:       fmt.Errorf("%w %q", ErrMissingColumn, r.name),
			}
		}
	}

	return cols, nil
}

// decodeRecord builds a customer from one record. stage identifies the record.
func (d *Decoder) decodeRecord(rec []string, stage string) (customer.Customer, error) {
	opts := []customer.Option{
		customer.WithID(rec[d.cols.id]),
		customer.WithName(rec[d.cols.name]),
	}

	if d.cols.email >= 0 {
		opts = append(opts, customer.WithEmail(rec[d.cols.email]))
	}

	if raw := rec[d.cols.terms]; strings.TrimSpace(raw) != "" {
		terms, err := parseTermsColumn(raw)
		if err != nil {
			return customer.Customer{}, ingestError.AddContext(err, stage)
		}

		opts = append(opts, customer.WithTerms(terms))
	}

	c, err := customer.Build(opts...)
	if err != nil {
		return customer.Customer{}, ingestError.FromBuilder(err, stage)
	}

	return c, nil
}

func parseTermsColumn(raw string) (customer.PaymentTerms, error) {
	return ingestError.Try(customer.ParsePaymentTerms(raw)).Context("parsing PaymentTerms column")
}
