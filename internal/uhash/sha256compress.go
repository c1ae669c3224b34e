package uhash

import (
	"encoding/binary"
	"math/bits"
)

// sha256RoundConstants are the 64 SHA-256 round constants (first 32
// bits of the fractional parts of the cube roots of the first 64
// primes), as defined by FIPS 180-4.
var sha256RoundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256Compress is the raw SHA-256 compression function: one 64-byte
// message block mixed into an 8-word chaining value. The standard
// library's crypto/sha256 does not export this primitive, and no pack
// dependency does either, so it is reimplemented here directly from
// FIPS 180-4 rather than through a full streaming hash.Hash.
func sha256Compress(h [8]uint32, block [64]byte) [8]uint32 {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := 0; i < 64; i++ {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + s1 + ch + sha256RoundConstants[i] + w[i]
		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		hh, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	return [8]uint32{h[0] + a, h[1] + b, h[2] + c, h[3] + d, h[4] + e, h[5] + f, h[6] + g, h[7] + hh}
}

// shaCompress is the §4.1 SHA-256 compression adapter. The state's
// first 32 bytes are the chaining value fed to the compression
// function together with the block; the resulting 32-byte chaining
// value is XORed with the state's second 32 bytes to produce the new
// state's first half, and the state's original first half is carried
// into the new second half so that all 64 bytes of state evolve every
// round (the spec text covers only the first half's update; this
// carry rule is this implementation's resolution of that gap, see
// DESIGN.md).
func shaCompress(state, block [BlockSize]byte) [BlockSize]byte {
	var h [8]uint32
	for i := 0; i < 8; i++ {
		h[i] = binary.BigEndian.Uint32(state[i*4:])
	}

	newH := sha256Compress(h, block)

	var newFirst [32]byte
	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint32(newFirst[i*4:], newH[i])
	}

	var out [BlockSize]byte
	for i := 0; i < 32; i++ {
		out[i] = newFirst[i] ^ state[32+i]
	}
	copy(out[32:], state[:32])
	return out
}
