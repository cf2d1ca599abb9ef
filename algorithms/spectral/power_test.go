package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RyanBlaney/fxdsp/algorithms/bam"
	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
	"github.com/RyanBlaney/fxdsp/algorithms/trig"
)

// makeTone synthesizes n samples of amp*cos(i*inc + phase) through the same
// cosine table the analysis reference uses.
func makeTone(n int, inc, phase bam.BAM16, amp fixed.Q15) []fixed.Q15 {
	src := make([]fixed.Q15, n)
	ph := phase
	for i := range src {
		src[i] = fixed.Mul(amp, trig.CosTable(ph.BAM8()))
		ph += inc
	}
	return src
}

func abs64(v fixed.Q16_15) int64 {
	if v < 0 {
		return -int64(v)
	}
	return int64(v)
}

func TestPowerInPhaseMatchedTone(t *testing.T) {
	const n = 256
	const amp = fixed.Q15(29000)
	inc := bam.BAM16(0x1000) // 16 cycles per buffer

	src := makeTone(n, inc, bam.Deg0, amp)
	got := PowerInPhase(src, inc, bam.Deg0)

	// Correlating a tone with itself integrates to N*amp/2.
	want := float64(n) * float64(amp) / 2
	assert.InEpsilon(t, want, float64(got), 0.05)
}

func TestPowerInPhaseOrthogonalReference(t *testing.T) {
	const n = 256
	const amp = fixed.Q15(29000)
	inc := bam.BAM16(0x1000)

	src := makeTone(n, inc, bam.Deg0, amp)
	matched := PowerInPhase(src, inc, bam.Deg0)
	ortho := PowerInPhase(src, inc, bam.Deg90)

	// A 90-degree reference is orthogonal over whole cycles; what remains
	// is quantization noise, well under the matched response.
	assert.Less(t, abs64(ortho), abs64(matched)/20)
}

func TestPowerInPhaseTracksSignalPhase(t *testing.T) {
	const n = 256
	const amp = fixed.Q15(20000)
	inc := bam.BAM16(0x0800) // 8 cycles per buffer
	phase := bam.FromDegrees(37)

	src := makeTone(n, inc, phase, amp)

	matched := PowerInPhase(src, inc, phase)
	want := float64(n) * float64(amp) / 2
	assert.InEpsilon(t, want, float64(matched), 0.05)

	ortho := PowerInPhase(src, inc, phase+bam.Deg90)
	assert.Less(t, abs64(ortho), abs64(matched)/20)
}

func TestPowerMagnitudeIsPhaseIndependent(t *testing.T) {
	const n = 256
	const amp = fixed.Q15(24000)
	inc := bam.BAM16(0x1000)
	want := float64(n) * float64(amp) / 2

	for _, deg := range []int32{0, 45, 123, 270} {
		src := makeTone(n, inc, bam.FromDegrees(deg), amp)
		got := PowerMagnitude(src, inc)
		assert.InEpsilon(t, want, float64(got), 0.05, "signal phase %d deg", deg)
	}
}

func TestPowerMagnitudeRejectsOffFrequency(t *testing.T) {
	const n = 256
	const amp = fixed.Q15(24000)

	src := makeTone(n, 0x1000, bam.Deg0, amp) // 16 cycles
	onBin := PowerMagnitude(src, 0x1000)
	offBin := PowerMagnitude(src, 0x1800) // 24 cycles, still whole

	assert.Less(t, abs64(offBin), abs64(onBin)/20)
}

func TestPowerMeasurementEmptyInput(t *testing.T) {
	assert.Equal(t, fixed.Q16_15(0), PowerInPhase(nil, 0x1000, bam.Deg0))
	assert.Equal(t, fixed.Q16_15(0), PowerMagnitude(nil, 0x1000))
}
