package error

// Kind classifies why an ingestion failure occurred, independent of how much
// context has been attached to it.
//
// The set is closed: only the types declared in this file implement Kind.
type Kind interface {
	error
	kind()
}

var (
	_ Kind = (*SourceFailure)(nil)
	_ Kind = (*BuilderFailure)(nil)
	_ Kind = (*ParseTermsFailure)(nil)
)

// SourceFailure reports that the record-stream reader failed: a malformed row,
// an I/O failure or a schema mismatch. Err is usually a *csv.ParseError.
type SourceFailure struct {
	Err error
}

func (*SourceFailure) kind() {}

func (k *SourceFailure) Error() string {
	if k == nil {
		return "source failure"
	}

	return dump(k.Err, "source failure")
}

func (k *SourceFailure) Unwrap() error {
	if k == nil {
		return nil
	}

	return k.Err
}

// BuilderFailure reports that constructing a customer record failed.
//
// Stage identifies the record or stage that triggered it (e.g. "row 12").
// The record data itself is intentionally not retained.
type BuilderFailure struct {
	Err   error
	Stage string
}

func (*BuilderFailure) kind() {}

func (k *BuilderFailure) Error() string {
	if k == nil {
		return "builder failure"
	}

	return dump(k.Err, "builder failure")
}

func (k *BuilderFailure) Unwrap() error {
	if k == nil {
		return nil
	}

	return k.Err
}

// ParseTermsFailure reports that payment terms could not be parsed from text.
// Description is assembled by the parser and names the offending input.
type ParseTermsFailure struct {
	Description string
}

func (*ParseTermsFailure) kind() {}

func (k *ParseTermsFailure) Error() string {
	if k == nil {
		return "parse terms failure"
	}

	return k.Description
}

// dump returns the text of err, or fallback when err is nil or renders empty.
func dump(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	if s := err.Error(); s != "" {
		return s
	}

	return fallback
}
