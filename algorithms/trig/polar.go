package trig

import (
	"github.com/RyanBlaney/fxdsp/algorithms/bam"
	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
)

// Polar is a vector in polar form: a non-negative Q15 magnitude in [0, 1)
// and a BAM16 phase. Like fixed.Complex it is a transient value, created by
// a conversion and discarded by the caller.
type Polar struct {
	Mag   fixed.Q15
	Phase bam.BAM16
}

// PolarToRect converts a polar vector to rectangular coordinates by seeding
// a rotation with the gain-compensated magnitude on the x axis. The result
// is true-scale.
func PolarToRect(p Polar) fixed.Complex {
	seed := fixed.Complex{Re: fixed.Mul(p.Mag, InverseGain)}
	return Rotate(p.Phase, seed)
}

// RectToPolar converts a rectangular vector to polar coordinates using the
// CORDIC vectoring mode, compensating the gain out of the magnitude. The
// phase is exact to the iteration depth; the magnitude is saturated to Q15.
func RectToPolar(v fixed.Complex) Polar {
	mag, phase := Vector(v)
	mag = int32((int64(mag) * int64(InverseGain)) >> 15)
	return Polar{Mag: fixed.Sat(mag), Phase: phase}
}
