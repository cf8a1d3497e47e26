// Package alerr provides the error taxonomy used throughout Cetane.
// All errors carry a stable, machine-readable code, structured context, and
// support errors.Is/errors.As through wrapping.
package alerr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code is a stable, machine-readable error code. Format: E{category}{number}.
type Code string

// Error codes grouped by the taxonomy in the registry/resolver/migrator design.
const (
	// Registry errors (E1xxx)
	ErrDuplicateName     Code = "E1001" // a migration name registered twice
	ErrMissingDependency Code = "E1002" // depends_on target not present in the registry
	ErrCycle             Code = "E1003" // dependency graph has a cycle

	// Operation/schema errors (E2xxx)
	ErrSchemaInvalid      Code = "E2001" // operation or field definition is malformed
	ErrUnsupportedOp      Code = "E2002" // capability flag forbids this operation's SQL lowering
	ErrNotReversible      Code = "E2003" // rollback requested for an irreversible operation
	ErrFieldChangesEmpty  Code = "E2004" // FieldChanges used with no fields set
	ErrInvalidIdentifier  Code = "E2005" // identifier is empty or exceeds the backend's length limit
	ErrInvalidSnakeCase   Code = "E2006" // identifier does not follow snake_case naming
	ErrReservedWord       Code = "E2007" // identifier collides with a SQL reserved word
	ErrInvalidReference   Code = "E2008" // a foreign-key reference targets an unknown table/column

	// Execution errors (E3xxx)
	ErrExecutor   Code = "E3001" // caller's exec/begin/commit/rollback callback failed
	ErrStateStore Code = "E3002" // the state store returned an error

	// Internal (E9xxx)
	EInternalError Code = "E9001"
)

// Error is Cetane's standard error type.
type Error struct {
	code    Code
	message string
	context map[string]any
	cause   error
}

// Error formats as "[CODE] message\n  key: value\n  cause: ...", with
// context keys sorted for deterministic output.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.code, e.message))

	if len(e.context) > 0 {
		keys := make([]string, 0, len(e.context))
		for k := range e.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("\n  %s: %v", k, e.context[k]))
		}
	}

	if e.cause != nil {
		b.WriteString(fmt.Sprintf("\n  cause: %v", e.cause))
	}

	return b.String()
}

// Unwrap returns the wrapped cause, for errors.Unwrap/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.code == targetErr.code
	}
	return false
}

// GetCode returns the error's code.
func (e *Error) GetCode() Code { return e.code }

// GetContext returns the error's structured context.
func (e *Error) GetContext() map[string]any { return e.context }

// GetMessage returns the error's message, without code or context.
func (e *Error) GetMessage() string { return e.message }

// GetCause returns the wrapped cause, or nil if there is none.
func (e *Error) GetCause() error { return e.cause }

// SetMessage replaces the error's message in place — used to prefix a
// generic validation error with the caller's context (e.g. "table " + msg).
func (e *Error) SetMessage(msg string) { e.message = msg }

// With attaches a key/value pair to the error's context.
func (e *Error) With(key string, value any) *Error {
	if e.context == nil {
		e.context = make(map[string]any)
	}
	e.context[key] = value
	return e
}

// WithTable attaches table context.
func (e *Error) WithTable(table string) *Error { return e.With("table", table) }

// WithColumn attaches column (field) context.
func (e *Error) WithColumn(name string) *Error { return e.With("column", name) }

// WithSQL attaches the offending SQL statement.
func (e *Error) WithSQL(sql string) *Error { return e.With("sql", sql) }

// WithMigration attaches the owning migration's name.
func (e *Error) WithMigration(name string) *Error { return e.With("migration", name) }

// WithLocation attaches a source file position — used when an error
// originates from a manifest file rather than a programmatic call.
func (e *Error) WithLocation(file string, line, col int) *Error {
	e.With("file", file)
	if line > 0 {
		e.With("line", line)
	}
	if col > 0 {
		e.With("column", col)
	}
	return e
}

// WithSource attaches the offending source line for display alongside the error.
func (e *Error) WithSource(source string) *Error { return e.With("source", source) }

// WithSpan attaches a column range (1-based, inclusive) to underline in the
// source line WithSource attached.
func (e *Error) WithSpan(start, end int) *Error {
	e.With("span_start", start)
	e.With("span_end", end)
	return e
}

// WithLabel attaches a short label printed under the span WithSpan attached.
func (e *Error) WithLabel(label string) *Error { return e.With("label", label) }

// WithNote appends a "note: ..." line to the error.
func (e *Error) WithNote(note string) *Error {
	notes, _ := e.context["notes"].([]string)
	notes = append(notes, note)
	return e.With("notes", notes)
}

// WithHelp appends a "help: ..." suggestion to the error.
func (e *Error) WithHelp(help string) *Error {
	helps, _ := e.context["helps"].([]string)
	helps = append(helps, help)
	return e.With("helps", helps)
}

// New creates a new Error.
func New(code Code, msg string) *Error {
	return &Error{code: code, message: msg, context: make(map[string]any)}
}

// Newf creates a new Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a new Error wrapping an existing error as its cause.
func Wrap(code Code, err error, msg string) *Error {
	if err == nil {
		return New(code, msg)
	}
	return &Error{code: code, message: msg, context: make(map[string]any), cause: err}
}

// Wrapf creates a new Error wrapping err with a formatted message.
func Wrapf(code Code, err error, format string, args ...any) *Error {
	return Wrap(code, err, fmt.Sprintf(format, args...))
}

// GetCode extracts the Code from an error chain, or "" if none is present.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}

// Is reports whether the first *Error in err's chain carries the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}
