// Package bam implements Binary Angle Measurement: encoding an angle as an
// unsigned fraction of a full turn in a fixed-width integer.
//
// A BAM16 value of 0x0000 is 0 degrees, 0x4000 is 90, 0x8000 is 180, 0xC000
// is 270, and the count wraps back to 0 at a full turn. Because unsigned
// integer arithmetic in Go wraps modulo the word size, adding and subtracting
// angles enforces the +/-360 degree equivalence for free; there is no
// out-of-range angle by construction. BAM16 values are never compared as
// signed quantities.
//
// Frequencies cross this package's boundary as BAM16 units per sample rather
// than Hz, which keeps the numeric core agnostic of the sample rate and the
// hardware behind it. A 250 Hz tone at 1000 samples/sec advances a quarter
// turn per sample, i.e. an increment of 0x4000.
package bam

// BAM16 is a 16-bit binary angle: the full turn divided into 65536 steps.
type BAM16 uint16

// BAM8 is an 8-bit binary angle: the full turn divided into 256 steps, the
// resolution of the cosine lookup table.
type BAM8 uint8

// Named BAM16 angles.
const (
	Deg0   BAM16 = 0x0000
	Deg30  BAM16 = 0x8003 / 6
	Deg45  BAM16 = Deg90 / 2
	Deg60  BAM16 = 0x10003 / 6
	Deg90  BAM16 = 0x4000
	Deg180 BAM16 = 0x8000
	Deg270 BAM16 = 0xC000

	// HalfTurn is pi radians, an alias of Deg180.
	HalfTurn BAM16 = Deg180
)

// FromDegrees converts an angle in whole degrees to BAM16. Degrees outside
// [0, 360) wrap naturally, so FromDegrees(-90) == FromDegrees(270).
func FromDegrees(deg int32) BAM16 {
	return BAM16(deg * int32(Deg45) / 45)
}

// BAM16 widens an 8-bit angle to 16 bits by shifting into the high byte.
func (a BAM8) BAM16() BAM16 {
	return BAM16(a) << 8
}

// BAM8 narrows a 16-bit angle to 8 bits, truncating the low byte.
func (a BAM16) BAM8() BAM8 {
	return BAM8(a >> 8)
}

// PhaseIncrement converts a frequency in Hz at the given sample rate into
// the BAM16 advance per sample:
//
//	round(hz * 2^16 / sampleRate)
//
// Repeatedly adding the increment to a phase accumulator reproduces the
// tone's phase over time, wrapping naturally every 2^16/increment samples.
// Frequencies near the Nyquist rate push the increment toward the wrap
// boundary and lose precision; that is a caveat, not an error.
func PhaseIncrement(hz, sampleRate uint32) BAM16 {
	return BAM16(((hz << 16) + sampleRate/2) / sampleRate)
}

// Quadrant predicates. A BAM16 angle's quadrant is fully determined by its
// two most-significant bits, so each test is a single mask and compare. The
// trigonometric routines rely on these folding exactly at the 0/90/180/270
// degree boundaries: 0x0000 is quadrant 1, 0x4000 quadrant 2, and so on.

// Quad1 reports whether a lies in [0, 90) degrees.
func (a BAM16) Quad1() bool { return a&0xC000 == 0x0000 }

// Quad2 reports whether a lies in [90, 180) degrees.
func (a BAM16) Quad2() bool { return a&0xC000 == 0x4000 }

// Quad3 reports whether a lies in [180, 270) degrees.
func (a BAM16) Quad3() bool { return a&0xC000 == 0x8000 }

// Quad4 reports whether a lies in [270, 360) degrees.
func (a BAM16) Quad4() bool { return a&0xC000 == 0xC000 }

// Quad12 reports whether a lies in the upper half plane, [0, 180) degrees.
func (a BAM16) Quad12() bool { return a&0x8000 == 0 }

// Quad34 reports whether a lies in the lower half plane, [180, 360) degrees.
func (a BAM16) Quad34() bool { return !a.Quad12() }

// Quad13 reports whether a lies in quadrant 1 or 3.
func (a BAM16) Quad13() bool { return a&0x4000 == 0 }

// Quad24 reports whether a lies in quadrant 2 or 4.
func (a BAM16) Quad24() bool { return !a.Quad13() }

// Quad23 reports whether a lies in the left half plane, [90, 270) degrees.
func (a BAM16) Quad23() bool { return (a - 0x4000).Quad12() }

// Quad14 reports whether a lies in the right half plane, [270, 90) degrees.
func (a BAM16) Quad14() bool { return (a + 0x4000).Quad12() }
