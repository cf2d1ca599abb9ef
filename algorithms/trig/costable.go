// Package trig provides the fixed-point trigonometric engine: a 256-entry
// cosine lookup table for coarse BAM8 angles, and a 16-iteration CORDIC for
// full BAM16 resolution rotation, sin/cos, and polar conversions.
//
// The lookup tables are built once at package initialization and never
// mutated, so they are safely shared by any number of callers, including
// interrupt-style contexts, without synchronization. Every routine here is a
// pure function with a fixed, data-independent iteration count.
package trig

import (
	"math"

	"github.com/RyanBlaney/fxdsp/algorithms/bam"
	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
)

// cosineTableSize is the number of entries in the cosine table, one per
// BAM8 step.
const cosineTableSize = 256

// cosTable[a] = round(One * cos(2*pi*a/256)).
var cosTable [cosineTableSize]fixed.Q15

func init() {
	for i := range cosTable {
		c := math.Cos(2 * math.Pi * float64(i) / cosineTableSize)
		cosTable[i] = fixed.Q15(math.Round(float64(fixed.One) * c))
	}
}

// CosTable looks up the cosine of a coarse BAM8 angle.
//
// The table trades angular resolution (1/256 turn) for a single indexed
// load, which is what the reference synthesis in power measurement and the
// FFT twiddle stages want. Use SinCos for full BAM16 resolution.
func CosTable(angle bam.BAM8) fixed.Q15 {
	return cosTable[angle]
}

// SinTable looks up the sine of a coarse BAM8 angle, using the identity
// sin(a) = cos(a - 90 degrees). BAM8 subtraction wraps, so every input is
// valid.
func SinTable(angle bam.BAM8) fixed.Q15 {
	return cosTable[angle-64]
}
