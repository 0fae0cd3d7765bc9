package bigint

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/arbint/fft/mocks"
	"github.com/agbru/arbint/internal/config"
)

// TestMul_FFTRegimeDelegatesToEngine verifies that Mul, once the operand
// sizes select the fft regime, calls through fftEngine rather than
// computing the convolution itself. A mock stands in for fft.Default so
// the assertion doesn't pay for a real transform.
func TestMul_FFTRegimeDelegatesToEngine(t *testing.T) {
	th := config.Default()
	th.KaratsubaCutoff = 1
	th.IntegerFFTCutoff = 2
	withLoweredCutoffs(t, th)

	ctrl := gomock.NewController(t)
	mockEngine := mocks.NewMockEngine(ctrl)

	prevEngine := fftEngine
	fftEngine = mockEngine
	t.Cleanup(func() { fftEngine = prevEngine })

	x := FromDecimal("1111111111111111111111111111")
	y := FromDecimal("123456789012345678901234567890")

	mockEngine.EXPECT().
		MultiplyU64(gomock.Any(), x.Limbs, y.Limbs).
		Return([]uint64{42}).
		Times(1)

	got := Mul(context.Background(), x, y)
	want := flushConvolution([]uint64{42})
	if !got.Equal(want) {
		t.Errorf("Mul with mocked engine = %s, want %s", got, want)
	}
}

// TestMul_FFTRegimeSelfMultiplyStillCallsMultiplyU64 verifies that mulFFT
// always dispatches through MultiplyU64, even when multiplying a value by
// itself: the self-multiply shortcut (routing to a cheaper self-convolution)
// lives inside fft.Multiply itself, not in bigint's regime dispatch, so the
// Engine seam sees a single entry point regardless of operand equality.
func TestMul_FFTRegimeSelfMultiplyStillCallsMultiplyU64(t *testing.T) {
	th := config.Default()
	th.KaratsubaCutoff = 1
	th.IntegerFFTCutoff = 2
	withLoweredCutoffs(t, th)

	ctrl := gomock.NewController(t)
	mockEngine := mocks.NewMockEngine(ctrl)

	prevEngine := fftEngine
	fftEngine = mockEngine
	t.Cleanup(func() { fftEngine = prevEngine })

	x := FromDecimal("123456789012345678901234567890")

	mockEngine.EXPECT().
		MultiplyU64(gomock.Any(), x.Limbs, x.Limbs).
		Return([]uint64{7}).
		Times(1)

	got := Mul(context.Background(), x, x)
	want := flushConvolution([]uint64{7})
	if !got.Equal(want) {
		t.Errorf("Mul(x, x) with mocked engine = %s, want %s", got, want)
	}
}
