package uhash

// chainEngine owns one scratchpad and runs the §4.3 fill phase and
// 12,288-round main loop against it.
type chainEngine struct {
	pad scratchpad
}

// run executes the fill phase then the main mixing loop for one
// chain, returning its final 64-byte state. nonce and chainIndex feed
// the per-round primitive selector; the address formula depends only
// on the current state and the round number.
func (c chainEngine) run(seed [SeedSize]byte, nonce uint64, chainIndex int) [BlockSize]byte {
	c.pad.fill(seed)

	state := seed
	for round := 0; round < Rounds; round++ {
		prim := primitiveSelector(nonce, chainIndex, round)
		idx := addressOf(state, round)

		block := *c.pad.block(idx)
		state = compress(prim, state, block)
		*c.pad.block(idx) = state
	}

	return state
}
