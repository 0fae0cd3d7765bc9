package fft

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

import "context"

// Engine is the minimal seam bigint depends on for its FFT-backed
// multiplication regime. The default implementation, Default, wraps the
// generic Multiply and Square functions instantiated for limb arithmetic;
// tests substitute a mock to exercise bigint's regime dispatch without
// paying for a real transform.
type Engine interface {
	MultiplyU64(ctx context.Context, left, right []uint16) []uint64
	SquareU64(ctx context.Context, input []uint16) []uint64
}

// defaultEngine is the production Engine backed by the real FFT.
type defaultEngine struct{}

// Default is the production FFT engine used by bigint unless a caller
// injects a different one (typically only done in tests).
var Default Engine = defaultEngine{}

// MultiplyU64 computes the linear convolution of left and right, widening
// limbs to uint64 so a run of carries can be flushed afterwards.
func (defaultEngine) MultiplyU64(ctx context.Context, left, right []uint16) []uint64 {
	return Multiply[uint64, uint16](ctx, left, right, false)
}

// SquareU64 computes the linear self-convolution of input.
func (defaultEngine) SquareU64(ctx context.Context, input []uint16) []uint64 {
	return Square[uint64, uint16](ctx, input)
}
