package alerr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorFormatsCodeAndMessage(t *testing.T) {
	err := New(ErrDuplicateName, "migration already registered")
	if got := err.Error(); !strings.HasPrefix(got, "[E1001] migration already registered") {
		t.Fatalf("unexpected error string: %q", got)
	}
}

func TestErrorContextSortedDeterministic(t *testing.T) {
	err := New(ErrSchemaInvalid, "bad field").With("zeta", 1).With("alpha", 2)
	got := err.Error()
	alphaIdx := strings.Index(got, "alpha")
	zetaIdx := strings.Index(got, "zeta")
	if alphaIdx == -1 || zetaIdx == -1 || alphaIdx > zetaIdx {
		t.Fatalf("expected sorted context keys, got: %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("driver exploded")
	err := Wrap(ErrExecutor, cause, "exec failed")

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find wrapped cause")
	}
	if got := errors.Unwrap(err); got != cause {
		t.Fatalf("Unwrap() = %v, want %v", got, cause)
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := Wrap(ErrStateStore, nil, "no cause here")
	if err.cause != nil {
		t.Fatalf("expected nil cause")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := New(ErrCycle, "dependency cycle").With("nodes", []string{"a", "b"})
	var wrapped error = Wrapf(ErrExecutor, err, "during migrate_forward")

	if !Is(wrapped, ErrExecutor) {
		t.Fatalf("expected outer code to match")
	}
	if Is(wrapped, ErrCycle) {
		t.Fatalf("Is only inspects the outermost *Error, not nested causes by code")
	}
	if GetCode(err) != ErrCycle {
		t.Fatalf("GetCode() = %v, want %v", GetCode(err), ErrCycle)
	}
}

func TestErrorIsMatchesSameCodeDifferentInstance(t *testing.T) {
	a := New(ErrMissingDependency, "missing dep").With("from", "0002")
	b := New(ErrMissingDependency, "missing dep").With("from", "0003")

	if !errors.Is(a, b) {
		t.Fatalf("expected errors with the same code to satisfy errors.Is")
	}
}

func TestWithMigrationAndTableHelpers(t *testing.T) {
	err := New(ErrNotReversible, "cannot roll back").
		WithMigration("0004_add_index").
		WithTable("users").
		WithColumn("email")

	ctx := err.GetContext()
	if ctx["migration"] != "0004_add_index" || ctx["table"] != "users" || ctx["column"] != "email" {
		t.Fatalf("unexpected context: %#v", ctx)
	}
}
