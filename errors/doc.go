// Package errors provides structured error types for the tcc-runtime binding.
//
// Errors are categorized by Phase (where in the session the error occurred)
// and Kind (error category). Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseLink, errors.KindLinkFailed).
//		Name("m").
//		Code(-1).
//		Detail("library not found on any configured search path").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.CompileFailed("main.c", -1)
//	err := errors.RelocationFailed("size", -1)
//
// All errors implement the standard error interface; errors.Is matches on
// the Phase and Kind pair, so callers can test against a category:
//
//	if errors.Is(err, tccerrors.Conflict("")) { ... }
//
// A missing symbol is not represented here at all: symbol lookup is a
// comma-ok operation on the relocated image, not an error.
package errors
