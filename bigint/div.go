package bigint

import (
	"context"
	"math"

	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/arbint/internal/errors"
	"github.com/agbru/arbint/internal/metrics"
)

var divTracer = otel.Tracer("arbint/bigint")

// estimateDiv produces a floating-point estimate of x/y using only the top
// DoubleDivSections limbs of each operand, scaled back up by the limb
// difference. The long-division loop in DivMod uses this as a starting
// guess for each quotient digit, then corrects it with a small number of
// exact comparisons.
func (x Int) estimateDiv(y Int) float64 {
	n, m := len(x.Limbs), len(y.Limbs)
	sections := thresholds.DoubleDivSections

	estimate, count, pBase := 0.0, 0, 1.0
	for i := n - 1; i >= 0 && count < sections; i-- {
		estimate += pBase * float64(x.Limbs[i])
		pBase /= float64(base)
		count++
	}

	otherEstimate, otherCount := 0.0, 0
	pBase = 1.0
	for i := m - 1; i >= 0 && otherCount < sections; i-- {
		otherEstimate += pBase * float64(y.Limbs[i])
		pBase /= float64(base)
		otherCount++
	}

	return estimate / otherEstimate * math.Pow(float64(base), float64(n-m))
}

// DivMod returns (x/y, x%y). It panics with an apperrors.DivisionByZeroError
// if y is zero.
func DivMod(ctx context.Context, x, y Int) (quotient, remainder Int) {
	_, span := divTracer.Start(ctx, "DivMod")
	defer span.End()

	if y.IsZero() {
		metrics.DivisionsTotal.WithLabelValues("error").Inc()
		panic(apperrors.DivisionByZeroError{Operation: "DivMod"})
	}

	n, m := len(x.Limbs), len(y.Limbs)
	quotient = Zero()
	remainder = x

	for i := n - m; i >= 0; i-- {
		if i >= len(remainder.Limbs) {
			continue
		}
		chunk := remainder.RangeFrom(i)

		div := uint64(chunk.estimateDiv(y) + 1e-7)
		scalar := MulScalar(y, div)

		for div > 0 && scalar.Cmp(chunk) > 0 {
			scalar = Sub(scalar, y)
			div--
		}
		for div+1 < base && Add(scalar, y).Cmp(chunk) <= 0 {
			scalar = Add(scalar, y)
			div++
		}

		remainder = Sub(remainder, scalar.Shl(i))
		remainder.trim()

		if div > 0 {
			quotient.checkedAdd(i, div)
		}
	}

	quotient.trim()
	remainder.trim()
	metrics.DivisionsTotal.WithLabelValues("success").Inc()
	return quotient, remainder
}

// DivModScalar returns (x/denominator, x%denominator). It panics with an
// apperrors.DivisionByZeroError if denominator is zero.
func DivModScalar(x Int, denominator uint64) (quotient Int, remainder uint64) {
	if denominator == 0 {
		metrics.DivisionsTotal.WithLabelValues("error").Inc()
		panic(apperrors.DivisionByZeroError{Operation: "DivModScalar"})
	}

	if denominator >= thresholds.BaseOverflowCutoff {
		q, r := DivMod(context.Background(), x, FromUint64(denominator))
		return q, uint64FromInt(r)
	}

	n := len(x.Limbs)
	quotient = Zero()
	rem := uint64(0)

	for i := n - 1; i >= 0; i-- {
		rem = base*rem + uint64(x.Limbs[i])
		if rem >= denominator {
			quotient.checkedAdd(i, rem/denominator)
			rem %= denominator
		}
	}

	quotient.trim()
	metrics.DivisionsTotal.WithLabelValues("success").Inc()
	return quotient, rem
}

// ModScalar returns x % denominator, taking a shortcut when the limb base
// is itself a multiple of denominator (then only the lowest limb matters).
// It panics with an apperrors.DivisionByZeroError if denominator is zero.
func ModScalar(x Int, denominator uint64) uint64 {
	if denominator == 0 {
		panic(apperrors.DivisionByZeroError{Operation: "ModScalar"})
	}

	if base%denominator == 0 {
		return uint64(x.Limbs[0]) % denominator
	}

	if denominator >= thresholds.BaseOverflowCutoff {
		_, r := DivMod(context.Background(), x, FromUint64(denominator))
		return uint64FromInt(r)
	}

	n := len(x.Limbs)
	remainder := uint64(0)
	for i := n - 1; i >= 0; i-- {
		remainder = base*remainder + uint64(x.Limbs[i])
		if remainder >= thresholds.BaseOverflowCutoff {
			remainder %= denominator
		}
	}
	return remainder % denominator
}

// uint64FromInt converts a small Int (one that fits in a uint64) to its
// numeric value.
func uint64FromInt(x Int) uint64 {
	var v uint64
	for i := len(x.Limbs) - 1; i >= 0; i-- {
		v = base*v + uint64(x.Limbs[i])
	}
	return v
}
