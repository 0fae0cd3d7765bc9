package fft

import (
	"math"
	"math/bits"
	"sync"

	"github.com/agbru/arbint/internal/logging"
)

// roots holds precomputed powers of unity, indexed the way the iterative
// FFT butterfly expects: roots[k+i] is the primitive root used at stage
// length k, offset i. It only ever grows, and growth copies into a fresh
// slice, so a slice captured under rootsMu stays valid after the lock is
// released even if another caller grows the table.
//
// bitRev caches the bit-reversal permutation for the most recently prepared
// transform length; it is rebuilt whenever n changes.
var (
	rootsMu sync.Mutex
	roots   = []complex128{0, 1}
	bitRev  []int
	bitRevN int
)

// RoundUpPowerTwo returns the smallest power of two that is >= n. It
// returns 1 for n <= 1.
func RoundUpPowerTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// prepareRootsLocked grows the shared root table, if needed, so that every stage
// of an n-point transform has its twiddle factors available. Callers must
// hold rootsMu.
func prepareRootsLocked(n int) {
	if len(roots) >= n {
		return
	}
	oldLen := len(roots)
	length := bits.TrailingZeros(uint(oldLen))
	newRoots := make([]complex128, n)
	copy(newRoots, roots)
	roots = newRoots
	currentLogger.Debug("root table growth",
		logging.Int("from", oldLen),
		logging.Int("to", n),
	)

	for 1<<length < n {
		minAngle := 2 * math.Pi / float64(int(1)<<(length+1))
		for i := 0; i < 1<<(length-1); i++ {
			index := (1 << (length - 1)) + i
			roots[2*index] = roots[index]
			angle := minAngle * float64(2*i+1)
			roots[2*index+1] = complex(math.Cos(angle), math.Sin(angle))
		}
		length++
	}
}

// bitReorderLocked returns the bit-reversal table for an n that must be a
// power of two, rebuilding the shared bitRev cache if n differs from the
// cached length. It does not touch values. Callers must hold rootsMu;
// bitReorder applies the permutation after releasing the lock.
func bitReorderLocked(n int, values []complex128) []int {
	if bitRevN != n {
		bitRev = make([]int, n)
		length := bits.TrailingZeros(uint(n))
		for i := 1; i < n; i++ {
			bitRev[i] = bitRev[i>>1]>>1 | (i&1)<<(length-1)
		}
		bitRevN = n
	}
	rev := bitRev
	return rev
}

func bitReorder(n int, values []complex128) {
	rootsMu.Lock()
	rev := bitReorderLocked(n, values)
	rootsMu.Unlock()

	for i := 0; i < n; i++ {
		if i < rev[i] {
			values[i], values[rev[i]] = values[rev[i]], values[i]
		}
	}
}

// rootCacheLen reports the current size of the shared root table, exposed
// so callers can feed it into the root-cache-size gauge.
func rootCacheLen() int {
	rootsMu.Lock()
	defer rootsMu.Unlock()
	return len(roots)
}
