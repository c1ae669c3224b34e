package uhash

import (
	"crypto/sha256"

	"github.com/zeebo/blake3"
)

// finalize implements §4.5: XOR-fold the four chain states, run the
// plain standard SHA-256 over the fold (a direct stdlib call — no
// pack dependency offers a SHA-256 library and this is an ordinary
// whole-message digest, not the raw compression primitive the mixing
// loop needs), then BLAKE3 the result down to the 32-byte digest using
// zeebo/blake3, the same dependency the teacher hashes shares with.
func finalize(states [Chains][BlockSize]byte) [DigestSize]byte {
	var folded [BlockSize]byte
	for _, s := range states {
		for i := range folded {
			folded[i] ^= s[i]
		}
	}

	h := sha256.Sum256(folded[:])

	b3 := blake3.New()
	b3.Write(h[:])
	sum := b3.Sum(nil)

	var digest [DigestSize]byte
	copy(digest[:], sum)
	return digest
}
