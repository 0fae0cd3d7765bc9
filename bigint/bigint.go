package bigint

import (
	"strings"

	"github.com/agbru/arbint/internal/config"
	apperrors "github.com/agbru/arbint/internal/errors"
)

// thresholds holds the active tuning values for this process, resolved
// once from ARBINT_* environment overrides at package initialization.
var thresholds = config.Load()

// base is the fixed limb radix, 10^Section.
var base = thresholds.Base()

// Int is an arbitrary-precision non-negative integer, stored as
// little-endian base-10000 limbs: Limbs[0] holds the least significant
// digits. The zero value represents zero only after a call to one of the
// constructors; use Zero() or FromUint64(0) rather than a bare Int{}.
type Int struct {
	Limbs []uint16
}

// Zero returns the integer 0.
func Zero() Int { return Int{Limbs: []uint16{0}} }

// FromUint64 constructs an Int from a uint64 value.
func FromUint64(x uint64) Int {
	var limbs []uint16
	for {
		limbs = append(limbs, uint16(x%base))
		x /= base
		if x == 0 {
			break
		}
	}
	return Int{Limbs: limbs}
}

// ToUint64 returns the uint64 value of a, truncating silently (via modular
// wraparound of the underlying limb accumulation) if a does not fit in 64
// bits. Callers that need overflow detection should compare a against
// FromUint64(math.MaxUint64) first.
func ToUint64(a Int) uint64 {
	return uint64FromInt(a)
}

// FromDecimal parses a decimal string into an Int. It panics with an
// apperrors.InvalidDigitError if s contains any byte outside ['0', '9'] or
// is empty.
func FromDecimal(s string) Int {
	if s == "" {
		panic(apperrors.InvalidDigitError{Input: s, Pos: 0})
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			panic(apperrors.InvalidDigitError{Input: s, Pos: i})
		}
	}

	section := thresholds.Section
	numLimbs := (len(s) + section - 1) / section
	if numLimbs < 1 {
		numLimbs = 1
	}
	limbs := make([]uint16, numLimbs)

	counter := 0
	index := 0
	p10 := uint16(1)
	for i := len(s) - 1; i >= 0; i-- {
		limbs[index] += p10 * uint16(s[i]-'0')
		counter++
		if counter >= section {
			counter = 0
			index++
			p10 = 1
		} else {
			p10 *= 10
		}
	}

	result := Int{Limbs: limbs}
	result.trim()
	return result
}

// trim drops trailing zero limbs, leaving at least one limb.
func (x *Int) trim() {
	for len(x.Limbs) > 1 && x.Limbs[len(x.Limbs)-1] == 0 {
		x.Limbs = x.Limbs[:len(x.Limbs)-1]
	}
	if len(x.Limbs) == 0 {
		x.Limbs = []uint16{0}
	}
}

// String renders x in decimal.
func (x Int) String() string {
	var b strings.Builder
	b.Grow(len(x.Limbs) * thresholds.Section)

	var digits []byte
	for _, limb := range x.Limbs {
		v := limb
		for i := 0; i < thresholds.Section; i++ {
			digits = append(digits, byte('0'+v%10))
			v /= 10
		}
	}
	for len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
	return b.String()
}

// IsZero reports whether x represents the value 0.
func (x Int) IsZero() bool {
	return len(x.Limbs) == 1 && x.Limbs[0] == 0
}

// Cmp compares x and y, returning -1, 0, or +1 as x is less than, equal to,
// or greater than y.
func (x Int) Cmp(y Int) int {
	n, m := len(x.Limbs), len(y.Limbs)
	if n != m {
		if n < m {
			return -1
		}
		return 1
	}
	for i := n - 1; i >= 0; i-- {
		if x.Limbs[i] != y.Limbs[i] {
			if x.Limbs[i] < y.Limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Shl returns x shifted left by p limbs (i.e. multiplied by base^p). It
// panics with an apperrors.NegativeShiftError if p < 0.
func (x Int) Shl(p int) Int {
	if p < 0 {
		panic(apperrors.NegativeShiftError{Shift: p})
	}
	if p == 0 {
		return x
	}
	n := len(x.Limbs)
	limbs := make([]uint16, n+p)
	copy(limbs[p:], x.Limbs)
	result := Int{Limbs: limbs}
	result.trim()
	return result
}

// Range returns the sub-integer formed by limbs [a, b), i.e. x with the
// lowest a limbs discarded and everything above limb b-1 discarded. It
// panics with an apperrors.RangeError if the bounds are invalid.
func (x Int) Range(a, b int) Int {
	if a < 0 || b > len(x.Limbs) || a > b {
		panic(apperrors.RangeError{Low: a, High: b, Len: len(x.Limbs)})
	}
	limbs := make([]uint16, b-a)
	copy(limbs, x.Limbs[a:b])
	result := Int{Limbs: limbs}
	result.trim()
	return result
}

// RangeFrom returns x with the lowest a limbs discarded.
func (x Int) RangeFrom(a int) Int {
	return x.Range(a, len(x.Limbs))
}

// checkedAdd adds v into the limb at position, growing Limbs as needed.
// The caller is responsible for carry propagation; this only places the
// value, it does not reduce mod base.
func (x *Int) checkedAdd(position int, v uint64) {
	if position >= len(x.Limbs) {
		grown := make([]uint16, position+1)
		copy(grown, x.Limbs)
		x.Limbs = grown
	}
	x.Limbs[position] = uint16(uint64(x.Limbs[position]) + v)
}

// Add returns x + y.
func Add(x, y Int) Int {
	result := Int{Limbs: append([]uint16(nil), x.Limbs...)}
	n := len(y.Limbs)
	carry := uint64(0)
	for i := 0; i < n || carry > 0; i++ {
		var yLimb uint64
		if i < n {
			yLimb = uint64(y.Limbs[i])
		}
		result.checkedAdd(i, yLimb+carry)
		if result.Limbs[i] >= uint16(base) {
			result.Limbs[i] -= uint16(base)
			carry = 1
		} else {
			carry = 0
		}
	}
	result.trim()
	return result
}

// Sub returns x - y. It panics with an apperrors.SubtractionUnderflowError
// if x < y, since Int represents only non-negative values.
func Sub(x, y Int) Int {
	if x.Less(y) {
		panic(apperrors.SubtractionUnderflowError{Minuend: x.String(), Subtrahend: y.String()})
	}
	result := Int{Limbs: append([]uint16(nil), x.Limbs...)}
	n := len(y.Limbs)
	carry := uint16(0)
	for i := 0; i < n || carry > 0; i++ {
		var subtract uint16
		if i < n {
			subtract = y.Limbs[i]
		}
		subtract += carry
		if result.Limbs[i] < subtract {
			result.Limbs[i] = uint16(uint32(result.Limbs[i]) + uint32(base) - uint32(subtract))
			carry = 1
		} else {
			result.Limbs[i] -= subtract
			carry = 0
		}
	}
	result.trim()
	return result
}

// Inc returns x + 1.
func Inc(x Int) Int { return Add(x, FromUint64(1)) }

// Dec returns x - 1. It panics with an apperrors.SubtractionUnderflowError
// if x is zero.
func Dec(x Int) Int { return Sub(x, FromUint64(1)) }
