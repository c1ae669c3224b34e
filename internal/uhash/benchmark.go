package uhash

import "time"

// Benchmark runs iterations back-to-back Hash calls over a fixed
// header with an incrementing nonce, and returns the elapsed wall
// time. It is the core's own benchmark(iterations) operation from
// spec.md §6 — a measurement primitive, not a benchmarking UI or
// harness (those remain out of scope per §1).
func (h *Hasher) Benchmark(iterations int) time.Duration {
	if iterations <= 0 {
		return 0
	}

	header := make([]byte, RecommendedInputSize-nonceSize)
	for i := range header {
		header[i] = byte(i)
	}
	input := append(header, make([]byte, nonceSize)...)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		input = WithNonce(input, uint64(i))
		if _, err := h.Hash(input); err != nil {
			break
		}
	}
	return time.Since(start)
}

// HashesPerSecond converts a Benchmark result into a throughput figure.
func HashesPerSecond(iterations int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(iterations) / elapsed.Seconds()
}
