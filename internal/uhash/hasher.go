package uhash

import "runtime"

// Hasher owns four reusable 512 KB scratchpads (roughly 2 MB total)
// and exposes the core's external interface: NewHasher / Hash /
// Close / MeetsDifficulty / Benchmark, per spec.md §6. A Hasher is not
// safe for concurrent Hash calls — its scratchpads are mutated in
// place on every call. Distinct Hasher instances are fully
// independent; mine many nonces in parallel by constructing one
// Hasher per worker, not by sharing one across goroutines.
type Hasher struct {
	engines   [Chains]chainEngine
	mode      ScheduleMode
	hwProfile HardwareProfile
}

// Option configures a Hasher at construction time.
type Option func(*Hasher)

// WithScheduleMode overrides the default ScheduleAuto fork-join mode.
func WithScheduleMode(mode ScheduleMode) Option {
	return func(h *Hasher) { h.mode = mode }
}

// NewHasher allocates a Hasher's four scratchpads and returns it ready
// for reuse across many Hash calls. The only failure mode is being
// unable to obtain the roughly 2 MB of backing memory.
func NewHasher(opts ...Option) (h *Hasher, err error) {
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, ErrAllocationFailure
		}
	}()

	h = &Hasher{mode: ScheduleAuto, hwProfile: probeHardware()}
	for i := 0; i < Chains; i++ {
		h.engines[i] = chainEngine{pad: newScratchpad()}
	}

	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// Hash computes the 32-byte UniversalHash v4 digest of input. input
// must be at least 8 bytes; the trailing 8 bytes are the
// little-endian nonce, and anything before them is the header.
// Scratchpads are overwritten in place, so Hash is safe to call
// repeatedly on the same Hasher but not concurrently.
func (h *Hasher) Hash(input []byte) ([DigestSize]byte, error) {
	var digest [DigestSize]byte

	header, nonce, err := splitInput(input)
	if err != nil {
		return digest, err
	}

	var seeds [Chains][SeedSize]byte
	for c := 0; c < Chains; c++ {
		seeds[c] = deriveSeed(header, nonce, c)
	}

	parallelAllowed := runtime.GOMAXPROCS(0) > 1
	states := runChains(h.engines, seeds, nonce, h.mode, parallelAllowed)

	return finalize(states), nil
}

// Close releases the Hasher's scratchpads. A Hasher must not be used
// after Close.
func (h *Hasher) Close() {
	for i := range h.engines {
		h.engines[i].pad.bytes = nil
	}
}

// PrimitiveProfile reports which compression adapters this Hasher's
// process could in principle accelerate in hardware (§9). Diagnostic
// only: it never changes a digest, since both paths run the identical
// portable implementation.
func (h *Hasher) PrimitiveProfile() HardwareProfile {
	return h.hwProfile
}
