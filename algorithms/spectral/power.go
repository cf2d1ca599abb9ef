// Package spectral provides frequency-domain analysis over finite runs of
// Q15 samples: single-frequency power measurement (a Goertzel-style
// correlator) and a real-input fixed-point radix-2 FFT.
//
// Both consume a caller-owned sample buffer in one call and hold no state
// between calls. Frequencies are expressed as BAM16 units per sample (see
// bam.PhaseIncrement), never as raw Hz, so the package stays agnostic of
// sample rate and acquisition hardware.
package spectral

import (
	"github.com/RyanBlaney/fxdsp/algorithms/bam"
	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
	"github.com/RyanBlaney/fxdsp/algorithms/trig"
)

// PowerInPhase correlates src against a synthesized reference tone and
// returns the projection of the signal onto that reference as a wide
// Q16_15 energy value.
//
// The reference is generated one sample at a time by a phase accumulator:
// it starts at phase, advances by freq per sample, and reads the cosine
// table at BAM8 resolution. A signal matching the reference's frequency and
// phase yields a near-maximal result; the same signal shifted 90 degrees
// yields near zero.
//
// Frequencies approaching the Nyquist rate (freq near the BAM16 wrap
// boundary) lose reference precision; that is a documented caveat, not a
// checked error.
func PowerInPhase(src []fixed.Q15, freq, phase bam.BAM16) fixed.Q16_15 {
	var acc fixed.Q16_15
	ph := phase
	for _, s := range src {
		ref := trig.CosTable(ph.BAM8())
		acc += fixed.Q16_15((int32(s) * int32(ref)) >> 15)
		ph += freq
	}
	return acc
}

// PowerMagnitude measures the energy of src at freq independent of phase.
//
// It runs two orthogonal in-phase correlations (0 and 90 degree reference
// phase) and combines them as the magnitude of the resulting I/Q pair,
// equivalent to sqrt(I*I + Q*Q) but computed with the CORDIC vectoring mode.
func PowerMagnitude(src []fixed.Q15, freq bam.BAM16) fixed.Q16_15 {
	i := PowerInPhase(src, freq, bam.Deg0)
	q := PowerInPhase(src, freq, bam.Deg90)
	return magnitudeWide(int32(i), int32(q))
}

// magnitudeWide combines a wide I/Q pair into a wide magnitude. The pair is
// block-shifted down until both arms fit Q15, vectored through the CORDIC,
// gain-compensated, and shifted back up.
func magnitudeWide(i, q int32) fixed.Q16_15 {
	var shift uint
	for i > int32(fixed.One) || i < -int32(fixed.One) ||
		q > int32(fixed.One) || q < -int32(fixed.One) {
		i >>= 1
		q >>= 1
		shift++
	}
	mag, _ := trig.Vector(fixed.Complex{Re: fixed.Q15(i), Im: fixed.Q15(q)})
	mag = int32((int64(mag) * int64(trig.InverseGain)) >> 15)
	return fixed.Q16_15(mag) << shift
}
