package fft

import "math/cmplx"

// fftIterative applies the in-place iterative radix-2 Cooley-Tukey
// transform to the first n entries of values, where n must be a power of
// two. It grows the shared root table as needed.
func fftIterative(n int, values []complex128) {
	rootsMu.Lock()
	prepareRootsLocked(n)
	r := roots
	rootsMu.Unlock()

	bitReorder(n, values)

	for length := 1; length < n; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			for i := 0; i < length; i++ {
				even := values[start+i]
				odd := values[start+length+i] * r[length+i]
				values[start+length+i] = even - odd
				values[start+i] = even + odd
			}
		}
	}
}

// extract recovers one of the three quantities packed into a size-n
// transform of two interleaved real sequences:
//
//   - side == 0: the transform of the even-indexed input subsequence
//     (used by Square)
//   - side == 1: the transform of the odd-indexed input subsequence
//     (used by Square)
//   - side == -1: the product of two same-length real transforms packed
//     into one complex transform (used by Multiply)
func extract(n int, values []complex128, index, side int) complex128 {
	other := (n - index) & (n - 1)

	if side == -1 {
		return (cmplx.Conj(values[other]*values[other]) - values[index]*values[index]) * complex(0, 0.25)
	}

	sign := 1.0
	multiplier := complex(0.5, 0)
	if side != 0 {
		sign = -1.0
		multiplier = complex(0, -0.5)
	}
	return multiplier * complex(real(values[index])+real(values[other])*sign, imag(values[index])-imag(values[other])*sign)
}

// invertFFT computes the inverse transform of an n-point sequence that was
// produced by packing two half-length real sequences into one complex
// sequence of length n, as Multiply does. n must be a power of two.
func invertFFT(n int, values []complex128) {
	invN := complex(1/float64(n), 0)
	for i := 0; i < n; i++ {
		values[i] = cmplx.Conj(values[i]) * invN
	}

	rootsMu.Lock()
	prepareRootsLocked(n)
	r := roots
	rootsMu.Unlock()

	half := n / 2
	for i := 0; i < half; i++ {
		first := values[i] + values[half+i]
		second := (values[i] - values[half+i]) * r[half+i]
		values[i] = first + second*complex(0, 1)
	}

	fftIterative(half, values)

	for i := n - 1; i >= 0; i-- {
		if i%2 == 0 {
			values[i] = complex(real(values[i/2]), 0)
		} else {
			values[i] = complex(imag(values[i/2]), 0)
		}
	}
}
