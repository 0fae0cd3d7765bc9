// Package bigint implements arbitrary-precision non-negative integer
// arithmetic over base-10000 limbs, dispatching multiplication between a
// schoolbook, Karatsuba, or FFT-backed regime depending on operand size.
// Every operation assumes both operands represent values >= 0; there is no
// signed variant.
package bigint
