// Package apperrors defines the typed precondition-violation errors raised by
// the arithmetic core. Every violation is a programmer error (a malformed
// decimal string, a negative shift count, division by zero) rather than a
// recoverable runtime condition, so each type is surfaced by panicking with
// the typed value rather than by returning an error.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w:
// WrapError wraps with %w, so errors.Is() and errors.As() see through it. The
// typed errors themselves wrap nothing and have no Unwrap() method.
package apperrors
