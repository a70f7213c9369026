package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in a compilation session the error occurred
type Phase string

const (
	PhaseGuard    Phase = "guard"    // engine exclusivity
	PhaseOpen     Phase = "open"     // engine handle allocation
	PhaseCompile  Phase = "compile"  // source compilation
	PhaseLink     Phase = "link"     // library resolution and file emission
	PhaseRelocate Phase = "relocate" // in-memory relocation
	PhaseRun      Phase = "run"      // in-memory execution
)

// Kind categorizes the error
type Kind string

const (
	KindConflict         Kind = "conflict"          // a concurrent session exists
	KindAllocation       Kind = "allocation"        // engine reported out of memory
	KindCompileFailed    Kind = "compile_failed"    // non-zero compile return
	KindLinkFailed       Kind = "link_failed"       // unresolved library/symbol or emission failure
	KindRelocationFailed Kind = "relocation_failed" // size query or copy step failed
	KindExecFailed       Kind = "exec_failed"       // in-memory program could not start
)

// Error is the structured error type used throughout the binding
type Error struct {
	Phase  Phase
	Kind   Kind
	Name   string // symbol, library, or file name involved, when known
	Code   int    // raw engine return value, when meaningful
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Name != "" {
		b.WriteByte(' ')
		fmt.Fprintf(&b, "%q", e.Name)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Code != 0 {
		fmt.Fprintf(&b, " (engine returned %d)", e.Code)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Name sets the symbol, library, or file name involved
func (b *Builder) Name(name string) *Builder {
	b.err.Name = name
	return b
}

// Code sets the raw engine return value
func (b *Builder) Code(code int) *Builder {
	b.err.Code = code
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Conflict creates a guard conflict error: a session is already active
func Conflict(detail string) *Error {
	return &Error{
		Phase:  PhaseGuard,
		Kind:   KindConflict,
		Detail: detail,
	}
}

// Allocation creates an engine allocation failure error
func Allocation(detail string) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindAllocation,
		Detail: detail,
	}
}

// CompileFailed creates a compilation failure error
func CompileFailed(name string, code int) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindCompileFailed,
		Name:   name,
		Code:   code,
		Detail: "diagnostics were delivered through the registered callback",
	}
}

// LinkFailed creates a library resolution or emission failure error
func LinkFailed(name string, code int, detail string) *Error {
	return &Error{
		Phase:  PhaseLink,
		Kind:   KindLinkFailed,
		Name:   name,
		Code:   code,
		Detail: detail,
	}
}

// RelocationFailed creates a relocation failure error.
// Step is "size" for the capacity query and "copy" for the fill call;
// the two steps fail independently and both are checked.
func RelocationFailed(step string, code int) *Error {
	return &Error{
		Phase:  PhaseRelocate,
		Kind:   KindRelocationFailed,
		Code:   code,
		Detail: fmt.Sprintf("%s step failed; output is likely not a memory image or has unresolved symbols", step),
	}
}

// ExecFailed creates an in-memory execution failure error
func ExecFailed(detail string, code int) *Error {
	return &Error{
		Phase:  PhaseRun,
		Kind:   KindExecFailed,
		Code:   code,
		Detail: detail,
	}
}
