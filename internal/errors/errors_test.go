// Package apperrors provides tests for the precondition-violation error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
)

func TestInvalidDigitError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         InvalidDigitError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error reports offending byte and position",
			err:      InvalidDigitError{Input: "12x4", Pos: 2},
			expected: `invalid digit 'x' at position 2 in "12x4"`,
		},
		{
			name:     "Error at first position",
			err:      InvalidDigitError{Input: "-5", Pos: 0},
			expected: `invalid digit '-' at position 0 in "-5"`,
		},
		{
			name:        "errors.As works with InvalidDigitError",
			err:         InvalidDigitError{Input: "9a", Pos: 1},
			expected:    `invalid digit 'a' at position 1 in "9a"`,
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var digitErr InvalidDigitError
				if !errors.As(err, &digitErr) {
					t.Error("expected error to be InvalidDigitError type")
				}
			}
		})
	}
}

func TestSubtractionUnderflowError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         SubtractionUnderflowError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error reports both operands",
			err:      SubtractionUnderflowError{Minuend: "5", Subtrahend: "10"},
			expected: "subtraction underflow: 5 - 10 is negative",
		},
		{
			name:        "errors.As works with SubtractionUnderflowError",
			err:         SubtractionUnderflowError{Minuend: "0", Subtrahend: "1"},
			expected:    "subtraction underflow: 0 - 1 is negative",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var underflowErr SubtractionUnderflowError
				if !errors.As(err, &underflowErr) {
					t.Error("expected error to be SubtractionUnderflowError type")
				}
			}
		})
	}
}

func TestDivisionByZeroError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         DivisionByZeroError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error names the operation",
			err:      DivisionByZeroError{Operation: "DivMod"},
			expected: "DivMod: division by zero",
		},
		{
			name:        "errors.As works with DivisionByZeroError",
			err:         DivisionByZeroError{Operation: "DivModScalar"},
			expected:    "DivModScalar: division by zero",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var divErr DivisionByZeroError
				if !errors.As(err, &divErr) {
					t.Error("expected error to be DivisionByZeroError type")
				}
			}
		})
	}
}

func TestNegativeShiftError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         NegativeShiftError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error reports the negative shift",
			err:      NegativeShiftError{Shift: -3},
			expected: "negative limb shift: -3",
		},
		{
			name:        "errors.As works with NegativeShiftError",
			err:         NegativeShiftError{Shift: -1},
			expected:    "negative limb shift: -1",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var shiftErr NegativeShiftError
				if !errors.As(err, &shiftErr) {
					t.Error("expected error to be NegativeShiftError type")
				}
			}
		})
	}
}

func TestRangeError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         RangeError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error reports bounds and length",
			err:      RangeError{Low: 2, High: 1, Len: 5},
			expected: "range [2, 1) out of bounds for length 5",
		},
		{
			name:     "Error when High exceeds Len",
			err:      RangeError{Low: 0, High: 9, Len: 4},
			expected: "range [0, 9) out of bounds for length 4",
		},
		{
			name:        "errors.As works with RangeError",
			err:         RangeError{Low: -1, High: 2, Len: 3},
			expected:    "range [-1, 2) out of bounds for length 3",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var rangeErr RangeError
				if !errors.As(err, &rangeErr) {
					t.Error("expected error to be RangeError type")
				}
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load config",
			expectedMsg: "failed to load config: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "operation timed out",
			expectedMsg: "operation timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("overflow"),
			format:      "limb %d exceeds base %d",
			args:        []any{7, 10000},
			expectedMsg: "limb 7 exceeds base 10000: overflow",
		},
		{
			name:        "preserves wrapped typed errors via errors.As",
			original:    DivisionByZeroError{Operation: "DivMod"},
			format:      "pipeline stage failed",
			expectedMsg: "pipeline stage failed: DivMod: division by zero",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}

			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}

			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestWrapError_ErrorsAsFindsUnderlyingType(t *testing.T) {
	t.Parallel()
	wrapped := WrapError(SubtractionUnderflowError{Minuend: "1", Subtrahend: "2"}, "batch failed")

	var underflowErr SubtractionUnderflowError
	if !errors.As(wrapped, &underflowErr) {
		t.Fatal("errors.As should find SubtractionUnderflowError through WrapError")
	}
	if underflowErr.Minuend != "1" || underflowErr.Subtrahend != "2" {
		t.Errorf("unexpected fields: %+v", underflowErr)
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"typed precondition error", DivisionByZeroError{Operation: "DivMod"}, false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := IsContextError(tt.err)
			if result != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, result, tt.expected)
			}
		})
	}
}
