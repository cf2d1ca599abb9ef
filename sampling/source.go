package sampling

import "github.com/RyanBlaney/fxdsp/algorithms/fixed"

// Source is the capability an acquisition backend exposes to the numeric
// core. Hardware implementations (timer-driven ADC streams and the like)
// live outside this module; anything satisfying the contract below can feed
// the transforms, which keeps the core testable on any host.
//
// The bulk transfer contract is transactional: Pop either delivers exactly
// len(dst) samples in acquisition order or delivers nothing and returns 0.
// Consumers must honor the zero return rather than substituting partial or
// zero-filled data.
type Source interface {
	// Start begins streaming at the given sample rate in Hz.
	Start(sampleRate int) error

	// Stop ends streaming. Samples already buffered remain readable.
	Stop() error

	// Read removes and returns the oldest buffered sample. The second
	// result is false when no sample is available.
	Read() (fixed.Q15, bool)

	// Pop fills dst with the oldest len(dst) buffered samples, all or
	// nothing, and returns the count transferred: len(dst) or 0.
	Pop(dst []fixed.Q15) int
}
