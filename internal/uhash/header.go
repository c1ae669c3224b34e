package uhash

import "encoding/binary"

// Recommended §6 input layout widths: epoch_seed(32) ||
// miner_address(20) || timestamp(8, LE) || nonce(8, LE).
const (
	EpochSeedSize    = 32
	MinerAddressSize = 20
	TimestampSize    = 8

	// RecommendedInputSize is the total width of the recommended layout.
	RecommendedInputSize = EpochSeedSize + MinerAddressSize + TimestampSize + nonceSize
)

// BuildHeader assembles an input following the §6 recommended layout.
// The core itself only constrains the trailing 8 bytes to be the
// nonce; this helper exists so callers don't hand-roll the
// binary.LittleEndian offsets themselves, the way the teacher's
// toshash.BuildHeader spared callers the MinerWork offset arithmetic.
func BuildHeader(epochSeed [EpochSeedSize]byte, minerAddress [MinerAddressSize]byte, timestamp, nonce uint64) []byte {
	input := make([]byte, RecommendedInputSize)

	copy(input[0:EpochSeedSize], epochSeed[:])
	copy(input[EpochSeedSize:EpochSeedSize+MinerAddressSize], minerAddress[:])

	ts := EpochSeedSize + MinerAddressSize
	binary.LittleEndian.PutUint64(input[ts:ts+TimestampSize], timestamp)
	binary.LittleEndian.PutUint64(input[ts+TimestampSize:], nonce)

	return input
}

// WithNonce returns a copy of input with its trailing 8 bytes replaced
// by nonce, leaving the header untouched. Convenient for nonce-search
// loops that reuse one header across many trial hashes.
func WithNonce(input []byte, nonce uint64) []byte {
	out := make([]byte, len(input))
	copy(out, input)
	if len(out) >= nonceSize {
		binary.LittleEndian.PutUint64(out[len(out)-nonceSize:], nonce)
	}
	return out
}
