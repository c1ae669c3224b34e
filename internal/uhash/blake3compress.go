package uhash

import (
	"encoding/binary"
	"math/bits"
)

// blake3IV reuses SHA-256's eight initial hash values, exactly as
// BLAKE3 specifies.
var blake3IV = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

// blake3MsgPermutation is BLAKE3's fixed message-word permutation
// applied between rounds.
var blake3MsgPermutation = [16]int{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8}

const (
	blake3ChunkStart uint32 = 1 << 0
	blake3ChunkEnd   uint32 = 1 << 1
)

func blake3G(state *[16]uint32, a, b, c, d int, mx, my uint32) {
	state[a] = state[a] + state[b] + mx
	state[d] = bits.RotateLeft32(state[d]^state[a], -16)
	state[c] = state[c] + state[d]
	state[b] = bits.RotateLeft32(state[b]^state[c], -12)
	state[a] = state[a] + state[b] + my
	state[d] = bits.RotateLeft32(state[d]^state[a], -8)
	state[c] = state[c] + state[d]
	state[b] = bits.RotateLeft32(state[b]^state[c], -7)
}

func blake3Round(state *[16]uint32, m *[16]uint32) {
	blake3G(state, 0, 4, 8, 12, m[0], m[1])
	blake3G(state, 1, 5, 9, 13, m[2], m[3])
	blake3G(state, 2, 6, 10, 14, m[4], m[5])
	blake3G(state, 3, 7, 11, 15, m[6], m[7])

	blake3G(state, 0, 5, 10, 15, m[8], m[9])
	blake3G(state, 1, 6, 11, 12, m[10], m[11])
	blake3G(state, 2, 7, 8, 13, m[12], m[13])
	blake3G(state, 3, 4, 9, 14, m[14], m[15])
}

func blake3Permute(m *[16]uint32) {
	var permuted [16]uint32
	for i, idx := range blake3MsgPermutation {
		permuted[i] = m[idx]
	}
	*m = permuted
}

// blake3CompressRaw is BLAKE3's raw compression function: an 8-word
// chaining value and a 16-word message block are mixed, under a
// 64-bit counter, a block length, and domain flags, into a 16-word
// (64-byte) output. zeebo/blake3 — the pack's BLAKE3 dependency, used
// elsewhere in this package for XOF seed derivation and the finalizer
// — does not export this single-call primitive, so it is reimplemented
// directly from the public BLAKE3 specification.
func blake3CompressRaw(cv [8]uint32, block [16]uint32, counter uint64, blockLen, flags uint32) [16]uint32 {
	state := [16]uint32{
		cv[0], cv[1], cv[2], cv[3], cv[4], cv[5], cv[6], cv[7],
		blake3IV[0], blake3IV[1], blake3IV[2], blake3IV[3],
		uint32(counter), uint32(counter >> 32), blockLen, flags,
	}
	m := block
	for round := 0; round < 7; round++ {
		blake3Round(&state, &m)
		if round < 6 {
			blake3Permute(&m)
		}
	}
	for i := 0; i < 8; i++ {
		state[i] ^= state[i+8]
		state[i+8] ^= cv[i]
	}
	return state
}

// blake3Compress is the §4.1 BLAKE3 compression adapter. The 64-byte
// state doubles as BLAKE3's raw 16-word compression output: its first
// 32 bytes are read as the 8-word chaining value fed into the next
// compression call, and the block supplies the 16 message words. The
// fixed counter/length/flags mirror compressing one standalone,
// complete chunk — a constant, deterministic choice, never varied
// per round.
func blake3Compress(state, block [BlockSize]byte) [BlockSize]byte {
	var cv [8]uint32
	for i := 0; i < 8; i++ {
		cv[i] = binary.LittleEndian.Uint32(state[i*4:])
	}
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	out := blake3CompressRaw(cv, m, 0, BlockSize, blake3ChunkStart|blake3ChunkEnd)

	var result [BlockSize]byte
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(result[i*4:], out[i])
	}
	return result
}
