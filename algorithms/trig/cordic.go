package trig

import (
	"math"

	"github.com/RyanBlaney/fxdsp/algorithms/bam"
	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
)

// Iterations is the fixed micro-rotation count, one per bit of angular
// resolution. Accuracy is bounded by this depth, not by input magnitude;
// convergence is never adaptive.
const Iterations = 16

// Gain compensation convention
//
// A raw CORDIC pass scales vector magnitude by the constant product
// K = prod(sqrt(1 + 2^-2i)) ~= 1.64676 over 16 iterations. This library
// resolves that consistently: Rotate and Vector are raw and leave the gain
// in their results, while the conveniences built on them (SinCos,
// PolarToRect, RectToPolar) pre- or post-multiply by InverseGain and return
// true-scale values. Callers composing their own pipelines on Rotate or
// Vector own the compensation themselves.

// InverseGain is 1/K in Q15, where K is the CORDIC magnitude gain at the
// fixed iteration depth.
const InverseGain fixed.Q15 = 19898 // round(0.6072529 * 2^15)

// atanTable[i] = round(atan(2^-i) in BAM16), the micro-rotation angles.
// Entry 0 is 45 degrees (0x2000); the series sums to just under 100 degrees,
// enough to converge any residual within [-90, 90).
var atanTable [Iterations]int32

func init() {
	for i := range atanTable {
		a := math.Atan(math.Ldexp(1, -i))
		atanTable[i] = int32(math.Round(a * 0x10000 / (2 * math.Pi)))
	}
}

// Rotate rotates vector v by angle using the CORDIC micro-rotation loop.
//
// The result's magnitude carries the raw CORDIC gain (~1.64676); callers
// that need a true-scale result supply a vector pre-scaled by InverseGain,
// as SinCos does. Components are computed in 32-bit intermediates and
// saturated to Q15 on the way out.
func Rotate(angle bam.BAM16, v fixed.Complex) fixed.Complex {
	x := int32(v.X())
	y := int32(v.Y())

	// Fold left-half-plane angles by a half turn so the residual fits the
	// convergence range of the micro-rotation series.
	if angle.Quad23() {
		x, y = -x, -y
		angle -= bam.Deg180
	}

	// Residual is now in [-90, 90) degrees, valid as a signed quantity.
	z := int32(int16(angle))

	for i := 0; i < Iterations; i++ {
		dx := x >> uint(i)
		dy := y >> uint(i)
		if z >= 0 {
			x -= dy
			y += dx
			z -= atanTable[i]
		} else {
			x += dy
			y -= dx
			z += atanTable[i]
		}
	}

	return fixed.Complex{Re: fixed.Sat(x), Im: fixed.Sat(y)}
}

// Vector runs the CORDIC in vectoring mode: it rotates v onto the positive
// x axis and reports the gain-scaled magnitude along with the total rotation
// undone, which is the vector's phase.
//
// The magnitude is returned wide (int32 at Q15 scale) because the gain can
// push a full-scale diagonal past the Q15 range; RectToPolar compensates and
// narrows it.
func Vector(v fixed.Complex) (mag int32, phase bam.BAM16) {
	x := int32(v.X())
	y := int32(v.Y())

	// Fold into the right half plane first; vectoring only converges there.
	var fold bam.BAM16
	if x < 0 {
		x, y = -x, -y
		fold = bam.Deg180
	}

	var z int32
	for i := 0; i < Iterations; i++ {
		dx := x >> uint(i)
		dy := y >> uint(i)
		if y >= 0 {
			x += dy
			y -= dx
			z += atanTable[i]
		} else {
			x -= dy
			y += dx
			z -= atanTable[i]
		}
	}

	return x, bam.BAM16(z) + fold
}

// SinCos simultaneously computes the sine and cosine of a BAM16 angle by
// rotating a gain-compensated unit vector. The result's Cos and Sin views
// are true-scale Q15 values.
func SinCos(angle bam.BAM16) fixed.Complex {
	return Rotate(angle, fixed.Complex{Re: InverseGain})
}
