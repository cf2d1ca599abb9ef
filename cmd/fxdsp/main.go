// fxdsp is a small host-side harness around the fixed-point DSP library:
// it synthesizes (or reads) a run of Q15 samples and prints single-frequency
// power measurements or a magnitude spectrum.
package main

func main() {
	Execute()
}
