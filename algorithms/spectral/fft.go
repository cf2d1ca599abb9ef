package spectral

import (
	"fmt"

	"github.com/RyanBlaney/fxdsp/algorithms/bam"
	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
	"github.com/RyanBlaney/fxdsp/algorithms/trig"
)

// MaxOrder bounds the transform size at 2^8 = 256 samples, the point where
// twiddle angles still land exactly on cosine table entries. Larger orders
// would silently truncate twiddle phases to BAM8 resolution.
const MaxOrder = 8

// Output convention
//
// A real-input transform over N = 2^order samples produces N/2+1 bins:
// bin 0 is DC, bin N/2 is the Nyquist bin, and bin k corresponds to k cycles
// per buffer. dst must have at least N/2+1 entries. Each butterfly stage
// halves the working values to prevent overflow, so bin outputs carry a 1/N
// scale: a full-scale sinusoid aligned to bin k lands near One/2 at k.
// Order 0 degenerates to a single bin equal to the lone input sample's
// projection or magnitude.

// FFTInPhase runs a real radix-2 transform over the first 2^order samples
// of src and writes, per bin, the projection of that bin's component at the
// given phase offset. It generalizes PowerInPhase to every bin at once.
//
// Input is consumed in natural time order; the bit-reversal permutation the
// butterfly structure needs is internal to the call.
func FFTInPhase(dst, src []fixed.Q15, order int, phase bam.BAM8) error {
	work, err := transform(src, order)
	if err != nil {
		return err
	}
	bins := len(work)/2 + 1
	if len(dst) < bins {
		return fmt.Errorf("spectral: dst holds %d bins, transform of order %d needs %d", len(dst), order, bins)
	}

	c := trig.CosTable(phase)
	s := trig.SinTable(phase)
	for k := 0; k < bins; k++ {
		p := int32(fixed.Mul(work[k].Re, c)) + int32(fixed.Mul(work[k].Im, s))
		dst[k] = fixed.Sat(p)
	}
	return nil
}

// FFTMagnitude runs the same transform as FFTInPhase but converts each bin
// to a phase-independent magnitude before writing it out, using the CORDIC
// vectoring combination PowerMagnitude uses for its I/Q pair.
func FFTMagnitude(dst, src []fixed.Q15, order int) error {
	work, err := transform(src, order)
	if err != nil {
		return err
	}
	bins := len(work)/2 + 1
	if len(dst) < bins {
		return fmt.Errorf("spectral: dst holds %d bins, transform of order %d needs %d", len(dst), order, bins)
	}

	for k := 0; k < bins; k++ {
		mag, _ := trig.Vector(work[k])
		mag = int32((int64(mag) * int64(trig.InverseGain)) >> 15)
		dst[k] = fixed.Sat(mag)
	}
	return nil
}

// transform validates the request and runs the decimation-in-time butterfly
// over a scratch copy of src, returning the N complex bins at 1/N scale.
func transform(src []fixed.Q15, order int) ([]fixed.Complex, error) {
	if order < 0 || order > MaxOrder {
		return nil, fmt.Errorf("spectral: order %d outside [0, %d]", order, MaxOrder)
	}
	n := 1 << uint(order)
	if len(src) < n {
		return nil, fmt.Errorf("spectral: need %d samples for order %d, have %d", n, order, len(src))
	}

	// Load the real input in bit-reversed order so the butterflies can run
	// in place and emit bins in natural order.
	work := make([]fixed.Complex, n)
	for i := 0; i < n; i++ {
		work[bitReverse(i, order)] = fixed.Complex{Re: src[i]}
	}

	for s := 1; s <= order; s++ {
		m := 1 << uint(s)
		half := m >> 1
		for k := 0; k < n; k += m {
			for j := 0; j < half; j++ {
				// Twiddle e^(-i*2*pi*j/m) as a BAM16 angle; for order <= 8
				// this lands exactly on a cosine table entry.
				w := -bam.BAM16(uint32(j) << uint(16-s))
				c := trig.CosTable(w.BAM8())
				sn := trig.SinTable(w.BAM8())

				a := work[k+j]
				b := work[k+j+half]
				tr := int32(fixed.Mul(b.Re, c)) - int32(fixed.Mul(b.Im, sn))
				ti := int32(fixed.Mul(b.Re, sn)) + int32(fixed.Mul(b.Im, c))

				// Halve each stage output: keeps every intermediate within
				// Q15 at the cost of the documented 1/N output scale.
				work[k+j] = fixed.Complex{
					Re: fixed.Q15((int32(a.Re) + tr) >> 1),
					Im: fixed.Q15((int32(a.Im) + ti) >> 1),
				}
				work[k+j+half] = fixed.Complex{
					Re: fixed.Q15((int32(a.Re) - tr) >> 1),
					Im: fixed.Q15((int32(a.Im) - ti) >> 1),
				}
			}
		}
	}
	return work, nil
}

// bitReverse reverses the low bits binary digits of i.
func bitReverse(i, bits int) int {
	r := 0
	for b := 0; b < bits; b++ {
		r = (r << 1) | (i & 1)
		i >>= 1
	}
	return r
}
