package bam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromDegrees(t *testing.T) {
	tests := []struct {
		deg  int32
		want BAM16
	}{
		{0, Deg0},
		{45, Deg45},
		{90, Deg90},
		{180, Deg180},
		{270, Deg270},
		{360, Deg0},
		{-90, Deg270},
		{-180, Deg180},
		{-360, Deg0},
		{450, Deg90},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromDegrees(tt.deg), "FromDegrees(%d)", tt.deg)
	}

	// The named 30/60 degree constants carry a rounding bias the truncating
	// conversion does not; they agree to within one count.
	assert.InDelta(t, float64(Deg30), float64(FromDegrees(30)), 1)
	assert.InDelta(t, float64(Deg60), float64(FromDegrees(60)), 1)
}

func TestNamedAngles(t *testing.T) {
	assert.Equal(t, BAM16(0x0000), Deg0)
	assert.Equal(t, BAM16(0x4000), Deg90)
	assert.Equal(t, BAM16(0x8000), Deg180)
	assert.Equal(t, BAM16(0xC000), Deg270)
	assert.Equal(t, Deg180, HalfTurn)

	// 3 * 60 degrees and 6 * 30 degrees both land within rounding of a
	// half turn; the constants carry the +0.5 rounding bias of the
	// division, so allow one count of slack per multiple.
	assert.InDelta(t, float64(Deg180), float64(3*Deg60), 3)
	assert.InDelta(t, float64(Deg180), float64(6*Deg30), 6)
}

func TestBAM8Conversions(t *testing.T) {
	assert.Equal(t, BAM16(0x4000), BAM8(0x40).BAM16())
	assert.Equal(t, BAM8(0x40), BAM16(0x4000).BAM8())

	// Narrowing truncates the low byte.
	assert.Equal(t, BAM8(0x40), BAM16(0x40FF).BAM8())

	// Round trip from BAM8 is exact.
	for a := 0; a < 256; a++ {
		assert.Equal(t, BAM8(a), BAM8(a).BAM16().BAM8())
	}
}

func TestAngleArithmeticWraps(t *testing.T) {
	// Use variables so the additions wrap at runtime instead of
	// overflowing as constant expressions.
	a270, a180, a0 := Deg270, Deg180, Deg0
	assert.Equal(t, Deg90, a270+a180)
	assert.Equal(t, Deg270, a0-Deg90)
	assert.Equal(t, Deg0, a180+a180)
}

func TestPhaseIncrement(t *testing.T) {
	// 250 Hz at 1000 samples/sec is a quarter turn per sample.
	assert.Equal(t, Deg90, PhaseIncrement(250, 1000))
	assert.Equal(t, Deg180, PhaseIncrement(500, 1000))

	// 1 kHz at 8 kHz: 65536/8 exactly.
	assert.Equal(t, BAM16(8192), PhaseIncrement(1000, 8000))

	// Non-dividing case rounds to nearest: 440*65536/8000 = 3604.48.
	assert.Equal(t, BAM16(3604), PhaseIncrement(440, 8000))

	// 697*65536/8000 = 5709.8 rounds up.
	assert.Equal(t, BAM16(5710), PhaseIncrement(697, 8000))
}

func TestPhaseIncrementReproducesFrequency(t *testing.T) {
	// Accumulating the increment for one second of samples should come
	// back to within rounding of the start phase times the cycle count.
	inc := PhaseIncrement(250, 1000)
	var phase BAM16
	for i := 0; i < 1000; i++ {
		phase += inc
	}
	// 250 full turns later the accumulator is back at zero.
	assert.Equal(t, Deg0, phase)
}

func TestQuadrants(t *testing.T) {
	tests := []struct {
		angle BAM16
		quad  int
	}{
		{0x0000, 1},
		{0x2000, 1},
		{0x3FFF, 1},
		{0x4000, 2},
		{0x7FFF, 2},
		{0x8000, 3},
		{0xBFFF, 3},
		{0xC000, 4},
		{0xFFFF, 4},
	}
	for _, tt := range tests {
		a := tt.angle
		assert.Equal(t, tt.quad == 1, a.Quad1(), "Quad1(0x%04X)", uint16(a))
		assert.Equal(t, tt.quad == 2, a.Quad2(), "Quad2(0x%04X)", uint16(a))
		assert.Equal(t, tt.quad == 3, a.Quad3(), "Quad3(0x%04X)", uint16(a))
		assert.Equal(t, tt.quad == 4, a.Quad4(), "Quad4(0x%04X)", uint16(a))

		assert.Equal(t, tt.quad == 1 || tt.quad == 2, a.Quad12())
		assert.Equal(t, tt.quad == 3 || tt.quad == 4, a.Quad34())
		assert.Equal(t, tt.quad == 1 || tt.quad == 3, a.Quad13())
		assert.Equal(t, tt.quad == 2 || tt.quad == 4, a.Quad24())
		assert.Equal(t, tt.quad == 2 || tt.quad == 3, a.Quad23())
		assert.Equal(t, tt.quad == 1 || tt.quad == 4, a.Quad14())
	}
}
