package sampling

import (
	"fmt"

	"github.com/RyanBlaney/fxdsp/algorithms/bam"
	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
	"github.com/RyanBlaney/fxdsp/algorithms/trig"
	"github.com/RyanBlaney/fxdsp/logging"
)

// ToneSource is a host-side Source that synthesizes a pure tone through the
// same phase-accumulator technique the analysis side uses: a BAM16 phase
// advanced by a fixed increment per sample, run through the CORDIC sin/cos.
//
// It exists so the transforms can be exercised and demonstrated without
// acquisition hardware. It is not safe for concurrent use.
type ToneSource struct {
	// FrequencyHz is the tone frequency; the per-sample increment is
	// derived from it at Start.
	FrequencyHz uint32

	// Amplitude scales the unit tone; One is full scale.
	Amplitude fixed.Q15

	inc     bam.BAM16
	phase   bam.BAM16
	running bool
}

var _ Source = (*ToneSource)(nil)

// Start derives the per-sample phase increment from the tone frequency and
// the sample rate and begins synthesis at phase zero.
func (t *ToneSource) Start(sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sampling: sample rate must be positive, got %d", sampleRate)
	}
	if t.FrequencyHz > uint32(sampleRate)/2 {
		return fmt.Errorf("sampling: tone at %d Hz exceeds Nyquist for %d samples/sec", t.FrequencyHz, sampleRate)
	}
	t.inc = bam.PhaseIncrement(t.FrequencyHz, uint32(sampleRate))
	t.phase = 0
	t.running = true
	logging.Debug("tone source started", logging.Fields{
		"frequency_hz": t.FrequencyHz,
		"sample_rate":  sampleRate,
		"increment":    t.inc,
	})
	return nil
}

// Stop ends synthesis. Subsequent reads deliver nothing.
func (t *ToneSource) Stop() error {
	t.running = false
	logging.Debug("tone source stopped", logging.Fields{
		"frequency_hz": t.FrequencyHz,
	})
	return nil
}

// Read synthesizes the next sample of the tone.
func (t *ToneSource) Read() (fixed.Q15, bool) {
	if !t.running {
		return 0, false
	}
	s := fixed.Mul(t.Amplitude, trig.SinCos(t.phase).Cos())
	t.phase += t.inc
	return s, true
}

// Pop fills dst with the next len(dst) samples of the tone. A running
// synthesized source always has samples, so the transfer only fails (and
// returns 0) after Stop.
func (t *ToneSource) Pop(dst []fixed.Q15) int {
	if !t.running {
		return 0
	}
	for i := range dst {
		dst[i], _ = t.Read()
	}
	return len(dst)
}
