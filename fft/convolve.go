package fft

import (
	"context"
	"math"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/agbru/arbint/internal/metrics"
)

// Numeric is the set of scalar types Multiply and Square accept as input or
// produce as output. Coefficients are treated as real values; converting a
// floating-point sequence through Multiply or Square is exact only up to
// the precision of the underlying float64 transform.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

var tracer = otel.Tracer("arbint/fft")

// toOutput converts a transform result back to TOut, rounding to the
// nearest integer unless TOut is itself a floating-point type.
func toOutput[TOut Numeric](v float64) TOut {
	switch any(TOut(0)).(type) {
	case float32, float64:
		return TOut(v)
	default:
		return TOut(math.Round(v))
	}
}

// Square returns the coefficients of input squared as a polynomial, i.e.
// the linear convolution of input with itself. The result has
// 2*len(input)-1 coefficients.
func Square[TOut, TIn Numeric](ctx context.Context, input []TIn) []TOut {
	if len(input) == 0 {
		return nil
	}
	_, span := tracer.Start(ctx, "Square")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.FFTTransformDuration.WithLabelValues("square").Observe(time.Since(start).Seconds())
	}()

	n := len(input)
	outputSize := 2*n - 1
	N := RoundUpPowerTwo(n)

	bruteForceCost := 0.4 * float64(n) * float64(n)
	fftCost := 2.0 * float64(N) * (float64(trailingZeros(N)) + 3)

	if bruteForceCost < fftCost {
		result := make([]TOut, outputSize)
		for i := 0; i < n; i++ {
			result[2*i] += TOut(input[i]) * TOut(input[i])
			for j := i + 1; j < n; j++ {
				result[i+j] += 2 * TOut(input[i]) * TOut(input[j])
			}
		}
		return result
	}

	rootsMu.Lock()
	prepareRootsLocked(2 * N)
	rootTable := roots
	rootsMu.Unlock()

	values := acquireComplexSlice(N)
	defer releaseComplexSlice(values)

	for i := 0; i < n; i += 2 {
		second := 0.0
		if i+1 < n {
			second = float64(input[i+1])
		}
		values[i/2] = complex(float64(input[i]), second)
	}

	fftIterative(N, values)

	metrics.RootCacheSize.Set(float64(rootCacheLen()))

	for i := 0; i <= N/2; i++ {
		j := (N - i) & (N - 1)
		even := extract(N, values, i, 0)
		odd := extract(N, values, i, 1)
		aux := even*even + odd*odd*rootTable[N+i]*rootTable[N+i]
		tmp := even * odd
		values[i] = aux - complex(0, 2)*tmp
		values[j] = conjugate(aux) - complex(0, 2)*conjugate(tmp)
	}

	invN := complex(1/float64(N), 0)
	for i := 0; i < N; i++ {
		values[i] = conjugate(values[i]) * invN
	}
	fftIterative(N, values)

	result := make([]TOut, outputSize)
	for i := 0; i < outputSize; i++ {
		var v float64
		if i%2 == 0 {
			v = real(values[i/2])
		} else {
			v = imag(values[i/2])
		}
		result[i] = toOutput[TOut](v)
	}
	return result
}

// Multiply returns the convolution of left and right. When circular is
// false the result has len(left)+len(right)-1 coefficients (the ordinary
// polynomial product); when true the result wraps around modulo the
// smallest power of two at least as large as max(len(left), len(right)).
func Multiply[TOut, TIn Numeric](ctx context.Context, left, right []TIn, circular bool) []TOut {
	if len(left) == 0 || len(right) == 0 {
		return nil
	}
	if !circular && sameSequence(left, right) {
		return Square[TOut, TIn](ctx, left)
	}

	_, span := tracer.Start(ctx, "Multiply")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.FFTTransformDuration.WithLabelValues("multiply").Observe(time.Since(start).Seconds())
	}()

	n := len(left)
	m := len(right)

	outputSize := n + m - 1
	if circular {
		outputSize = RoundUpPowerTwo(maxInt(n, m))
	}
	N := RoundUpPowerTwo(outputSize)

	bruteForceCost := 0.55 * float64(n) * float64(m)
	fftCost := 1.5 * float64(N) * (float64(trailingZeros(N)) + 3)

	if bruteForceCost < fftCost {
		result := make([]TOut, outputSize)
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				idx := i + j
				if idx >= outputSize {
					idx -= outputSize
				}
				result[idx] += TOut(left[i]) * TOut(right[j])
			}
		}
		return result
	}

	values := acquireComplexSlice(N)
	defer releaseComplexSlice(values)

	for i := 0; i < n; i++ {
		values[i] = complex(float64(left[i]), imag(values[i]))
	}
	for i := 0; i < m; i++ {
		values[i] = complex(real(values[i]), float64(right[i]))
	}

	fftIterative(N, values)
	metrics.RootCacheSize.Set(float64(rootCacheLen()))

	for i := 0; i <= N/2; i++ {
		j := (N - i) & (N - 1)
		product := extract(N, values, i, -1)
		values[i] = product
		values[j] = conjugate(product)
	}
	invertFFT(N, values)

	result := make([]TOut, outputSize)
	for i := 0; i < outputSize; i++ {
		result[i] = toOutput[TOut](real(values[i]))
	}
	return result
}

// sameSequence reports whether left and right hold identical elements in
// the same order, the condition under which Multiply's result equals
// Square's.
func sameSequence[TIn Numeric](left, right []TIn) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if left[i] != right[i] {
			return false
		}
	}
	return true
}

func conjugate(c complex128) complex128 { return complex(real(c), -imag(c)) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func trailingZeros(n int) int {
	count := 0
	for n > 1 {
		n >>= 1
		count++
	}
	return count
}
