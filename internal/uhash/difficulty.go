package uhash

import "math/big"

// MaxTarget is the target corresponding to difficulty 0/1: the full
// 256-bit space, matching the teacher's util.MaxTarget.
var MaxTarget = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// MeetsDifficulty implements §4.6: counts the digest's leading zero
// bits, MSB of byte 0 first, and reports whether that count is at
// least bits. bits == 0 is trivially true; bits > 256 is always false.
func MeetsDifficulty(digest [DigestSize]byte, bits int) bool {
	if bits <= 0 {
		return true
	}
	if bits > DigestSize*8 {
		return false
	}
	return leadingZeroBits(digest) >= bits
}

func leadingZeroBits(digest [DigestSize]byte) int {
	count := 0
	for _, b := range digest {
		if b == 0 {
			count += 8
			continue
		}
		count += leadingZerosByte(b)
		break
	}
	return count
}

func leadingZerosByte(b byte) int {
	n := 0
	for mask := byte(0x80); mask != 0; mask >>= 1 {
		if b&mask != 0 {
			break
		}
		n++
	}
	return n
}

// DifficultyToTarget converts an integer difficulty into a big.Int
// target, in the same shape as the
// teacher's util.DifficultyToTarget: target = MaxTarget / difficulty.
// Supplied as a convenience for consumers that track difficulty as a
// target comparison rather than a leading-zero-bit count.
func DifficultyToTarget(difficulty uint64) *big.Int {
	if difficulty == 0 {
		return new(big.Int).Set(MaxTarget)
	}
	return new(big.Int).Div(MaxTarget, new(big.Int).SetUint64(difficulty))
}

// TargetToDifficulty is the inverse of DifficultyToTarget.
func TargetToDifficulty(target *big.Int) uint64 {
	if target.Sign() <= 0 {
		return 0
	}
	return new(big.Int).Div(MaxTarget, target).Uint64()
}

// HashMeetsTarget reports whether digest, read as a big-endian
// integer, is at or below target — the comparison form difficulty-1
// mining pools use instead of a leading-zero-bit count.
func HashMeetsTarget(digest [DigestSize]byte, target *big.Int) bool {
	hashInt := new(big.Int).SetBytes(digest[:])
	return hashInt.Cmp(target) <= 0
}

// NetworkHashrate estimates network hashrate from a target difficulty
// and an average block time, the same shape as the teacher's
// util.NetworkHashrate.
func NetworkHashrate(difficulty uint64, blockTimeSeconds float64) float64 {
	if blockTimeSeconds <= 0 {
		return 0
	}
	return float64(difficulty) / blockTimeSeconds
}

// EstimatedTimeToBlock estimates the expected time to find a block at
// hashrate against difficulty.
func EstimatedTimeToBlock(hashrate float64, difficulty uint64) float64 {
	if hashrate <= 0 {
		return 0
	}
	return float64(difficulty) / hashrate
}
