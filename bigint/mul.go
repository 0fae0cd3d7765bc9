package bigint

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/agbru/arbint/fft"
	"github.com/agbru/arbint/internal/logging"
	"github.com/agbru/arbint/internal/metrics"
)

var mulTracer = otel.Tracer("arbint/bigint")

// fftEngine is the convolution backend mulFFT dispatches to. Tests swap
// this for a mock to exercise regime dispatch without paying for a real
// transform.
var fftEngine fft.Engine = fft.Default

// Mul returns x * y, dispatching between three regimes by operand size:
// schoolbook for small operands, Karatsuba once the shorter operand exceeds
// KaratsubaCutoff limbs, and FFT-backed convolution once the combined limb
// count also exceeds IntegerFFTCutoff.
func Mul(ctx context.Context, x, y Int) Int {
	ctx, span := mulTracer.Start(ctx, "Mul")
	defer span.End()

	n, m := len(x.Limbs), len(y.Limbs)
	if n > m {
		return Mul(ctx, y, x)
	}

	regime := regimeFor(n, m)
	currentLogger.Debug("regime chosen",
		logging.String("regime", regime),
		logging.Int("n", n),
		logging.Int("m", m),
	)
	start := time.Now()
	result := dispatchMul(ctx, regime, x, y)
	metrics.RegimeDuration.WithLabelValues(regime).Observe(time.Since(start).Seconds())
	metrics.RegimesTotal.WithLabelValues(regime, "success").Inc()
	return result
}

// regimeFor reports which multiplication regime Mul will use for operands
// of the given limb lengths (n <= m).
func regimeFor(n, m int) string {
	switch {
	case n > thresholds.KaratsubaCutoff && n+m > thresholds.IntegerFFTCutoff:
		return "fft"
	case n > thresholds.KaratsubaCutoff:
		return "karatsuba"
	default:
		return "schoolbook"
	}
}

func dispatchMul(ctx context.Context, regime string, x, y Int) Int {
	switch regime {
	case "fft":
		return mulFFT(ctx, x, y)
	case "karatsuba":
		return mulKaratsuba(ctx, x, y)
	default:
		return mulSchoolbook(x, y)
	}
}

// mulFFT multiplies via fft.Engine's convolution, then flushes base-10000
// carries out of the raw uint64 coefficients. The self-multiply shortcut
// (routing to SquareU64 when x and y hold the same limbs) lives in
// fft.Multiply itself, not here.
func mulFFT(ctx context.Context, x, y Int) Int {
	return flushConvolution(fftEngine.MultiplyU64(ctx, x.Limbs, y.Limbs))
}

// flushConvolution turns a raw (unreduced) convolution of limb products
// into a normalized Int by propagating carries mod base.
func flushConvolution(coeffs []uint64) Int {
	product := Zero()
	carry := uint64(0)
	n := len(coeffs)
	for i := 0; i < n || carry > 0; i++ {
		var value uint64
		if i < n {
			value = coeffs[i]
		}
		value += carry
		carry = value / base
		value %= base
		product.checkedAdd(i, value)
	}
	product.trim()
	return product
}

// mulKaratsuba implements the standard divide-and-conquer identity:
//
//	(a2*B+a1)*(b2*B+b1) = a1*b1*B^0 + ((a1+a2)(b1+b2) - a2*b2 - a1*b1)*B^1 + a2*b2*B^2
//
// where B = base^mid and a1/b1 hold the low limbs, a2/b2 the high limbs.
func mulKaratsuba(ctx context.Context, x, y Int) Int {
	n, m := len(x.Limbs), len(y.Limbs)
	mid := n / 2
	currentLogger.Debug("karatsuba split",
		logging.Int("n", n),
		logging.Int("m", m),
		logging.Int("mid", mid),
	)

	a1 := x.Range(0, mid)
	a2 := x.RangeFrom(mid)
	b1 := y.Range(0, mid)
	b2 := y.Range(mid, m)

	z := Mul(ctx, a1, b1)
	xHi := Mul(ctx, a2, b2)
	sumA := Add(a1, a2)
	sumB := Add(b1, b2)
	y2 := Sub(Sub(Mul(ctx, sumA, sumB), xHi), z)

	return Add(Add(xHi.Shl(2*mid), y2.Shl(mid)), z)
}

// mulSchoolbook implements carry-flushed long multiplication, deferring
// carry propagation until the running accumulator risks overflowing a
// uint64 (tracked via U64Bound), exactly as the reference implementation
// does.
func mulSchoolbook(x, y Int) Int {
	n, m := len(x.Limbs), len(y.Limbs)
	product := Int{Limbs: make([]uint16, n+m-1)}

	carry := uint64(0)
	for indexSum := 0; indexSum < n+m-1 || carry > 0; indexSum++ {
		value := carry % base
		carry /= base

		lo := indexSum - (m - 1)
		if lo < 0 {
			lo = 0
		}
		hi := indexSum
		if hi > n-1 {
			hi = n - 1
		}
		for i := lo; i <= hi; i++ {
			value += uint64(x.Limbs[i]) * uint64(y.Limbs[indexSum-i])
			if value > thresholds.U64Bound {
				carry += value / base
				value %= base
			}
		}

		carry += value / base
		value %= base
		product.checkedAdd(indexSum, value)
	}

	product.trim()
	return product
}

// MulScalar returns x * scalar.
func MulScalar(x Int, scalar uint64) Int {
	if scalar == 0 {
		return Zero()
	}
	if scalar >= thresholds.BaseOverflowCutoff {
		return Mul(context.Background(), x, FromUint64(scalar))
	}

	n := len(x.Limbs)
	product := Int{Limbs: make([]uint16, n+1)}
	carry := uint64(0)
	for i := 0; i < n || carry > 0; i++ {
		var limb uint64
		if i < n {
			limb = uint64(x.Limbs[i])
		}
		value := scalar*limb + carry
		carry = value / base
		value %= base
		product.checkedAdd(i, value)
	}
	product.trim()
	return product
}
