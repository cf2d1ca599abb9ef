package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
	"github.com/RyanBlaney/fxdsp/algorithms/spectral"
)

var (
	spectrumFreq  uint32
	spectrumOrder int
	spectrumAmp   float64
	spectrumStdin bool
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Print the magnitude spectrum of a sample run",
	Long: `Runs the fixed-point real FFT over 2^order samples and prints the
magnitude of each of the 2^order/2+1 bins (DC through Nyquist), with the
equivalent frequency at the configured sample rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if spectrumOrder < 0 || spectrumOrder > spectral.MaxOrder {
			return fmt.Errorf("order %d outside [0, %d]", spectrumOrder, spectral.MaxOrder)
		}
		n := 1 << uint(spectrumOrder)
		src, err := acquire(n, spectrumFreq, spectrumAmp, spectrumStdin)
		if err != nil {
			return err
		}

		dst := make([]fixed.Q15, n/2+1)
		if err := spectral.FFTMagnitude(dst, src, spectrumOrder); err != nil {
			return err
		}

		mags := make([]float64, len(dst))
		for i, m := range dst {
			mags[i] = float64(m) / float64(fixed.One)
		}
		peak := floats.Max(mags)

		fmt.Printf("%4s %10s %8s %9s\n", "bin", "freq (Hz)", "mag", "dBFS")
		for k, m := range mags {
			fmt.Printf("%4d %10.1f %8.4f %9.1f %s\n",
				k,
				float64(k)*float64(sampleRate)/float64(n),
				m,
				dbfs(m),
				bar(m, peak))
		}
		return nil
	},
}

func init() {
	spectrumCmd.Flags().Uint32Var(&spectrumFreq, "freq", 1000,
		"synthesized tone frequency in Hz")
	spectrumCmd.Flags().IntVar(&spectrumOrder, "order", 6,
		"transform order; size is 2^order samples")
	spectrumCmd.Flags().Float64Var(&spectrumAmp, "amp", 0.9,
		"synthesized tone amplitude, 0..1")
	spectrumCmd.Flags().BoolVar(&spectrumStdin, "stdin", false,
		"read raw Q15 samples from stdin instead of synthesizing")
	rootCmd.AddCommand(spectrumCmd)
}

// dbfs converts a unit-scale magnitude to decibels relative to full scale,
// floored at -96 dB (the 16-bit noise floor).
func dbfs(m float64) float64 {
	if m <= 0 {
		return -96
	}
	db := 20 * math.Log10(m)
	if db < -96 {
		return -96
	}
	return db
}

// bar renders a simple proportional bar for terminal display.
func bar(m, peak float64) string {
	if peak <= 0 {
		return ""
	}
	return strings.Repeat("#", int(m/peak*40+0.5))
}
