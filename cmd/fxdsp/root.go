package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
	"github.com/RyanBlaney/fxdsp/logging"
	"github.com/RyanBlaney/fxdsp/sampling"
)

var (
	sampleRate int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "fxdsp",
	Short: "Fixed-point DSP analysis harness",
	Long: `fxdsp exercises the fixed-point trigonometric and spectral engine on a
host machine: it synthesizes a test tone (or reads raw Q15 samples from
stdin) and runs the library's single-frequency power measurement or real
FFT over it.

All internal arithmetic is 16-bit fixed point; frequencies are converted
to BAM16-per-sample increments at the configured sample rate.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logging.SetLevel(logging.DebugLevel)
		}
		return bindFlags(cmd, viper.GetViper())
	},
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().IntVar(&sampleRate, "rate", 8000,
		"sample rate in Hz")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
}

// initConfig wires environment variables (FXDSP_RATE and friends) into viper.
func initConfig() {
	viper.SetEnvPrefix("FXDSP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// bindFlags lets viper-supplied values (env) back unset cobra flags.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				lastErr = err
			}
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}
	})
	return lastErr
}

// acquire returns count samples: synthesized at freqHz and amplitude amp,
// or raw Q15 integers scanned from stdin when fromStdin is set.
func acquire(count int, freqHz uint32, amp float64, fromStdin bool) ([]fixed.Q15, error) {
	if fromStdin {
		return readStdin(count)
	}

	src := &sampling.ToneSource{
		FrequencyHz: freqHz,
		Amplitude:   fixed.Q15(amp * float64(fixed.One)),
	}
	if err := src.Start(sampleRate); err != nil {
		return nil, err
	}
	defer src.Stop()

	buf := make([]fixed.Q15, count)
	if src.Pop(buf) == 0 {
		return nil, fmt.Errorf("tone source delivered no samples")
	}
	return buf, nil
}

// readStdin scans exactly count whitespace-separated Q15 integers,
// mirroring the all-or-nothing transfer contract of a sample source.
func readStdin(count int) ([]fixed.Q15, error) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)

	buf := make([]fixed.Q15, 0, count)
	for len(buf) < count && scanner.Scan() {
		v, err := strconv.ParseInt(scanner.Text(), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("bad sample %q: %w", scanner.Text(), err)
		}
		buf = append(buf, fixed.Q15(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(buf) < count {
		return nil, fmt.Errorf("need %d samples on stdin, got %d", count, len(buf))
	}
	return buf, nil
}
