// Package fixed provides the Q-format fixed-point arithmetic primitives the
// rest of the library is built on.
//
// Q15 is the working sample format: a signed 16-bit integer carrying an
// implicit scale of 1/32768, so the nominal value range is [-1, 1). Sums of
// Q15 products are carried in the wide Q16_15 accumulator, which keeps the
// same 1/32768 scale but extends the integer range to [-65536, 65536).
//
// Everything here targets processors without floating-point hardware: every
// operation is integer shifts, adds, and multiplies, with bit-exact and
// documented rounding behavior so results reproduce across hosts.
package fixed

// Q15 is a signed 16-bit fixed-point quantity at scale 1/32768, covering
// [-1, 1) in steps of 1/32768. Addition and subtraction are plain integer
// operations; raw overflow wraps silently unless the caller saturates.
type Q15 int16

// UQ1_15 is an unsigned 16-bit fixed-point quantity at scale 1/32768,
// covering [0, 2) in steps of 1/32768.
type UQ1_15 uint16

// Q16_15 is a signed 32-bit accumulator at scale 1/32768, covering
// [-65536, 65536). It holds sums of Q15xQ15 products; see MAC for the
// overflow guarantee.
type Q16_15 int32

// Common Q15 constants.
const (
	// Zero is the Q15 representation of 0.
	Zero Q15 = 0x0000

	// One is the largest representable positive Q15 value, 32767/32768.
	// It stands in for 1.0 throughout the library.
	One Q15 = 0x7FFF
)

// Mul multiplies two Q15 values.
//
// Both operands are widened to 32 bits before multiplying, and the doubled
// scale factor is removed with an arithmetic shift right by 15. The shift
// truncates toward negative infinity rather than rounding; that bias is part
// of the contract, so results are bit-exact across implementations.
// Mul(One, One) is One-1 (0x7FFE), one LSB shy of One.
func Mul(a, b Q15) Q15 {
	return Q15((int32(a) * int32(b)) >> 15)
}

// Sat clamps a wide intermediate result to the symmetric Q15 range
// [-One, One]. Use it wherever an addition or accumulation may legally
// exceed range; plain Q15 arithmetic wraps instead.
func Sat(x int32) Q15 {
	if x > int32(One) {
		return One
	}
	if x < -int32(One) {
		return -One
	}
	return Q15(x)
}

// MAC multiply-accumulates two Q15 sequences into a Q16_15 total:
//
//	sum over i of a[i]*b[i]
//
// It runs over min(len(a), len(b)) terms. Each product is shifted down to
// Q15 scale before summation, discarding the least-significant fractional
// bits; that precision loss buys overflow headroom, making the accumulator
// safe for at least 65536 terms of full-scale operands. No saturation is
// applied to the final sum.
func MAC(a, b []Q15) Q16_15 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var acc Q16_15
	for i := 0; i < n; i++ {
		acc += Q16_15((int32(a[i]) * int32(b[i])) >> 15)
	}
	return acc
}
