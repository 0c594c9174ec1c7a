package error

// New creates an Error with the given kind and context entries, bypassing the
// seeding done by the conversions below. Context is defensively cloned.
// With no context the Error renders as "no context".
func New(kind Kind, context ...string) *Error {
	return &Error{
		kind:    kind,
		context: cloneContext(context),
	}
}

// FromSource converts a record-stream reader failure into an Error.
// The context is seeded with the textual dump of err.
func FromSource(err error) *Error {
	k := &SourceFailure{Err: err}

	return New(k, k.Error())
}

// FromBuilder converts a record-construction failure into an Error.
// The context is seeded with the builder's dump followed by stage, so the
// rendered form reads "stage -> builder error".
func FromBuilder(err error, stage string) *Error {
	k := &BuilderFailure{Err: err, Stage: stage}

	return New(k, k.Error(), stage)
}

// ParseTerms creates an Error for payment terms that could not be parsed.
// description should name the offending input; it becomes the seeded entry.
func ParseTerms(description string) *Error {
	return New(&ParseTermsFailure{Description: description}, description)
}
