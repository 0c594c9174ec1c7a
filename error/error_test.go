package error_test

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	ingestError "github.com/next-trace/scg-ingest/error"
)

func TestFromSource_SingleSeededEntry(t *testing.T) {
	t.Parallel()

	raw := &csv.ParseError{StartLine: 7, Line: 7, Column: 1, Err: csv.ErrFieldCount}
	e := ingestError.FromSource(raw)

	if got, want := e.Error(), "record on line 7: wrong number of fields"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	if contains(e.Error(), ingestError.Separator) {
		t.Fatalf("single entry must not contain separator: %q", e.Error())
	}

	if diff := cmp.Diff([]string{raw.Error()}, e.Context()); diff != "" {
		t.Fatalf("Context() mismatch (-want +got):\n%s", diff)
	}

	var sf *ingestError.SourceFailure
	if !errors.As(e, &sf) || sf.Err != raw {
		t.Fatalf("errors.As should yield the SourceFailure carrying the raw error")
	}

	if !errors.Is(e, csv.ErrFieldCount) {
		t.Fatalf("errors.Is(e, csv.ErrFieldCount) = false; want true")
	}
}

func TestFromBuilder_RoundTrip(t *testing.T) {
	t.Parallel()

	cause := errors.New("customer: name must be initialized")
	e := ingestError.FromBuilder(cause, "row 12").AddContext("loading customers.csv")

	want := "loading customers.csv -> row 12 -> customer: name must be initialized"
	if got := e.Error(); got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	bf, ok := e.Kind().(*ingestError.BuilderFailure)
	if !ok {
		t.Fatalf("Kind()=%T want *BuilderFailure", e.Kind())
	}

	if bf.Stage != "row 12" || bf.Err != cause {
		t.Fatalf("BuilderFailure payload mismatch: stage=%q err=%v", bf.Stage, bf.Err)
	}

	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is(e, cause) = false; want true")
	}
}

func TestParseTerms_Scenario(t *testing.T) {
	t.Parallel()

	e := ingestError.ParseTerms("expected one of NET30/NET60/COD, got 'NET45'").
		AddContext("parsing PaymentTerms column")

	want := "parsing PaymentTerms column -> expected one of NET30/NET60/COD, got 'NET45'"
	if got := e.Error(); got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	var pf *ingestError.ParseTermsFailure
	if !errors.As(e, &pf) {
		t.Fatalf("errors.As(e, *ParseTermsFailure) = false; want true")
	}

	if pf.Description != "expected one of NET30/NET60/COD, got 'NET45'" {
		t.Fatalf("Description=%q", pf.Description)
	}
}

func TestAddContext_ReverseChronological(t *testing.T) {
	t.Parallel()

	e := ingestError.FromSource(io.ErrUnexpectedEOF)
	kind := e.Kind()

	got := e.AddContext("c1").AddContext("c2")
	if got != e {
		t.Fatalf("AddContext must return the same receiver")
	}

	if want := "c2 -> c1 -> unexpected EOF"; e.Error() != want {
		t.Fatalf("Error()=%q want=%q", e.Error(), want)
	}

	if diff := cmp.Diff([]string{"unexpected EOF", "c1", "c2"}, e.Context()); diff != "" {
		t.Fatalf("Context() mismatch (-want +got):\n%s", diff)
	}

	if e.Kind() != kind {
		t.Fatalf("AddContext changed the kind")
	}

	if sf := e.Kind().(*ingestError.SourceFailure); sf.Err != io.ErrUnexpectedEOF {
		t.Fatalf("AddContext changed the kind payload: %v", sf.Err)
	}
}

func TestNew_EmptyContextRendersNoContext(t *testing.T) {
	t.Parallel()

	e := ingestError.New(&ingestError.ParseTermsFailure{Description: "bad"})

	if got := e.Error(); got != "no context" {
		t.Fatalf("Error()=%q want=%q", got, "no context")
	}

	if e.Context() != nil {
		t.Fatalf("Context() for empty context should be nil")
	}
}

func TestNew_ContextIsCloned(t *testing.T) {
	t.Parallel()

	seed := []string{"a", "b"}
	e := ingestError.New(&ingestError.SourceFailure{}, seed...)
	seed[0] = "mutated"

	if got, want := e.Error(), "b -> a"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	// Mutating the returned slice must not change internal state
	ctx := e.Context()
	ctx[1] = "leak"

	if contains(e.Error(), "leak") {
		t.Fatalf("Context returned the internal slice (mutation leaked)")
	}
}

func TestNilReceiverBehaviors(t *testing.T) {
	t.Parallel()

	var e *ingestError.Error

	if got := e.Error(); got != "<nil>" {
		t.Fatalf("nil receiver Error()=%q", got)
	}

	if got := e.AddContext("x"); got != nil {
		t.Fatalf("AddContext on nil should return nil receiver")
	}

	if got := e.Unwrap(); got != nil {
		t.Fatalf("Unwrap on nil should return nil")
	}

	if got := e.Kind(); got != nil {
		t.Fatalf("Kind on nil should return nil, got %v", got)
	}

	if got := e.Context(); got != nil {
		t.Fatalf("Context on nil should return nil, got %v", got)
	}
}

func TestTypedNilKind(t *testing.T) {
	t.Parallel()

	target := errors.New("target")

	for _, kind := range []ingestError.Kind{
		(*ingestError.SourceFailure)(nil),
		(*ingestError.BuilderFailure)(nil),
		(*ingestError.ParseTermsFailure)(nil),
	} {
		e := ingestError.New(kind, "seed")

		if errors.Is(e, target) {
			t.Fatalf("errors.Is matched an unrelated target for %T", kind)
		}

		if kind.Error() == "" {
			t.Fatalf("nil %T rendered empty", kind)
		}
	}
}

func TestFromSource_EmptyDump(t *testing.T) {
	t.Parallel()

	e := ingestError.FromSource(errors.New(""))

	if got, want := e.Error(), "source failure"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	if got, want := ingestError.FromBuilder(errors.New(""), "row 3").Error(), "row 3 -> builder failure"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}
}

func TestKindDumps_NilInner(t *testing.T) {
	t.Parallel()

	if got := ingestError.FromSource(nil).Error(); got != "source failure" {
		t.Fatalf("FromSource(nil).Error()=%q", got)
	}

	if got := ingestError.FromBuilder(nil, "row 1").Error(); got != "row 1 -> builder failure" {
		t.Fatalf("FromBuilder(nil).Error()=%q", got)
	}
}

func TestAddContextFunc(t *testing.T) {
	t.Parallel()

	if got := ingestError.AddContext(nil, "stage"); got != nil {
		t.Fatalf("AddContext(nil) => %v; want nil", got)
	}

	e := ingestError.ParseTerms("bad terms")
	if got := ingestError.AddContext(e, "stage"); got != error(e) {
		t.Fatalf("AddContext(*Error) returned a different error")
	}

	if got, want := e.Error(), "stage -> bad terms"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	// Wrapped by fmt.Errorf: the inner *Error gains the entry and is returned.
	inner := ingestError.ParseTerms("bad terms")
	wrapped := fmt.Errorf("outer: %w", inner)
	ret := ingestError.AddContext(wrapped, "stage")

	if got, want := ret.Error(), "stage -> bad terms"; got != want {
		t.Fatalf("returned Error()=%q want=%q", got, want)
	}

	if ret != error(inner) {
		t.Fatalf("AddContext(wrapped) should return the inner *Error")
	}

	// Foreign errors are classified as source failures.
	plain := errors.New("boom")
	got := ingestError.AddContext(plain, "reading input")

	e2, ok := ingestError.As(got)
	if !ok {
		t.Fatalf("AddContext(plain) must produce an *Error")
	}

	if _, ok := e2.Kind().(*ingestError.SourceFailure); !ok {
		t.Fatalf("Kind()=%T want *SourceFailure", e2.Kind())
	}

	if want := "reading input -> boom"; got.Error() != want {
		t.Fatalf("Error()=%q want=%q", got.Error(), want)
	}

	if !errors.Is(got, plain) {
		t.Fatalf("AddContext must preserve cause for errors.Is")
	}
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	load := func(fail bool) (err error) {
		defer ingestError.Annotate(&err, "loading customers.csv")

		if fail {
			return ingestError.FromBuilder(errors.New("id must be initialized"), "row 2")
		}

		return nil
	}

	if err := load(false); err != nil {
		t.Fatalf("Annotate must leave nil errors alone, got %v", err)
	}

	err := load(true)
	if want := "loading customers.csv -> row 2 -> id must be initialized"; err.Error() != want {
		t.Fatalf("Error()=%q want=%q", err.Error(), want)
	}

	// nil pointer is tolerated
	ingestError.Annotate(nil, "ignored")
}

func TestTryContext(t *testing.T) {
	t.Parallel()

	ok := func() (int, error) { return 42, nil }
	fail := func() (int, error) { return 0, ingestError.ParseTerms("got 'X'") }

	v, err := ingestError.Try(ok()).Context("stage")
	if err != nil || v != 42 {
		t.Fatalf("Try(ok).Context => (%d, %v); want (42, nil)", v, err)
	}

	wrappedFail := func() (int, error) { return 0, fmt.Errorf("outer: %w", ingestError.ParseTerms("got 'Y'")) }

	_, err = ingestError.Try(wrappedFail()).Context("stage")
	if want := "stage -> got 'Y'"; err == nil || err.Error() != want {
		t.Fatalf("wrapped err=%v want=%q", err, want)
	}

	v, err = ingestError.Try(fail()).Context("parsing PaymentTerms column")
	if v != 0 {
		t.Fatalf("value on failure = %d; want 0", v)
	}

	if want := "parsing PaymentTerms column -> got 'X'"; err == nil || err.Error() != want {
		t.Fatalf("err=%v want=%q", err, want)
	}
}

func TestAs(t *testing.T) {
	t.Parallel()

	if _, ok := ingestError.As(nil); ok {
		t.Fatalf("As(nil) should report false")
	}

	if _, ok := ingestError.As(errors.New("plain")); ok {
		t.Fatalf("As(plain) should report false")
	}

	e := ingestError.ParseTerms("x")
	got, ok := ingestError.As(fmt.Errorf("wrapped: %w", e))

	if !ok || got != e {
		t.Fatalf("As should yield the wrapped *Error itself")
	}
}

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// FuzzAddContext (no panics, simple expectations).
func FuzzAddContext(f *testing.F) {
	f.Add("seed", "stage")
	f.Add("", "")
	f.Fuzz(func(t *testing.T, seed, stage string) {
		e := ingestError.ParseTerms(seed).AddContext(stage)

		if got, want := e.Error(), stage+ingestError.Separator+seed; got != want {
			t.Fatalf("Error()=%q want=%q", got, want)
		}

		if pf := e.Kind().(*ingestError.ParseTermsFailure); pf.Description != seed {
			t.Fatalf("kind payload changed: %q", pf.Description)
		}
	})
}
