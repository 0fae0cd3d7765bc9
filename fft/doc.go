// Package fft implements an iterative radix-2 complex FFT and the real
// linear-convolution helpers built on top of it: Multiply and Square, which
// each pack two real coefficient sequences into a single complex transform
// and recover the wanted convolution from the Hermitian symmetry of the
// result. The bigint package uses these as its large-operand multiplication
// engine.
package fft
