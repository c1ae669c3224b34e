package uhash

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// splitInput implements §4.2 steps 1-3: validate length, then split
// the trailing 8 bytes (little-endian nonce) from the header.
func splitInput(input []byte) (header []byte, nonce uint64, err error) {
	if len(input) < nonceSize {
		return nil, 0, ErrInvalidInput
	}
	split := len(input) - nonceSize
	nonce = binary.LittleEndian.Uint64(input[split:])
	return input[:split], nonce, nil
}

// chainTweak computes nonce XOR (chainIndex * goldenRatio) under
// unsigned 64-bit wrapping arithmetic, per §4.2 step 4.
func chainTweak(nonce uint64, chainIndex int) uint64 {
	return nonce ^ (uint64(chainIndex) * goldenRatio)
}

// deriveSeed computes seed_c = BLAKE3_XOF(header || LE64(tweak), 64
// bytes), using zeebo/blake3's extensible-output Digest reader — the
// same dependency the teacher uses for share hashing, here driving its
// XOF mode instead of a fixed 32-byte Sum.
func deriveSeed(header []byte, nonce uint64, chainIndex int) [SeedSize]byte {
	tweak := chainTweak(nonce, chainIndex)

	var tweakBytes [8]byte
	binary.LittleEndian.PutUint64(tweakBytes[:], tweak)

	h := blake3.New()
	h.Write(header)
	h.Write(tweakBytes[:])

	var seed [SeedSize]byte
	d := h.Digest()
	d.Read(seed[:])
	return seed
}
