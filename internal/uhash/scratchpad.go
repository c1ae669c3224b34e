package uhash

import "math/bits"

// scratchpad is one chain's 512 KB working memory, viewed as 8,192
// 64-byte blocks. The backing array is owned by the Hasher and reused
// across calls; fill overwrites it in place every Hash invocation.
type scratchpad struct {
	bytes []byte
}

func newScratchpad() scratchpad {
	return scratchpad{bytes: make([]byte, ScratchpadSizeBytes)}
}

func (s scratchpad) block(idx int) *[BlockSize]byte {
	return (*[BlockSize]byte)(s.bytes[idx*BlockSize : idx*BlockSize+BlockSize])
}

// fill initializes the scratchpad from seed per §4.3's fill phase:
// self-feed the AES adapter starting from the seed, writing each
// successive 64-byte state into the next block.
func (s scratchpad) fill(seed [SeedSize]byte) {
	state := seed
	for i := 0; i < ScratchpadBlocks; i++ {
		state = aesCompress(state, state)
		*s.block(i) = state
	}
}

// addressOf implements the §4.3 step 2 address formula in isolation,
// so it can be exercised directly as a testable property independent
// of a running chain.
func addressOf(state [BlockSize]byte, round int) int {
	lo := leU64(state[0:8])
	hi := leU64(state[8:16])
	r := uint64(round)
	a := lo ^ hi ^ bits.RotateLeft64(r, 13) ^ (r * addressMixer)
	return int(a % ScratchpadBlocks)
}

func leU64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
