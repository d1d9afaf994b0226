// Copyright 2024 The turb1600 Authors
// This file is part of the turb1600 library.
//
// The turb1600 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The turb1600 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the turb1600 library. If not, see <http://www.gnu.org/licenses/>.

package turb1600

// absorb XORs each 136-byte block of padded into the state and applies
// blockRounds mixing rounds per block. The round counter increases
// monotonically across blocks.
//
// padded must be a positive multiple of BlockSize. A violation means the
// padding step is broken, not that the caller passed bad input, so it
// panics rather than returning an error.
func absorb(a *[stateWords]uint64, round *uint64, padded []byte) {
	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		panic("turb1600: padded input not block-aligned")
	}
	for len(padded) > 0 {
		xorBlock(a, padded)
		padded = padded[BlockSize:]
		for i := 0; i < blockRounds; i++ {
			permuteRound(a, *round)
			*round++
		}
	}
}

// finishRounds applies the finalization rounds after the last absorbed
// block, continuing the round counter.
func finishRounds(a *[stateWords]uint64, round *uint64) {
	for i := 0; i < finalRounds; i++ {
		permuteRound(a, *round)
		*round++
	}
}

// squeeze fills out from the rate portion of the state, applying one
// further round between extractions when more than BlockSize bytes are
// requested. The default digest fits in a single extraction, but the
// loop is general.
func squeeze(a *[stateWords]uint64, round *uint64, out []byte) {
	var block [BlockSize]byte
	for {
		extractRate(a, block[:])
		n := copy(out, block[:])
		out = out[n:]
		if len(out) == 0 {
			return
		}
		permuteRound(a, *round)
		*round++
	}
}

// Hasher is a streaming turb1600 sponge. It implements hash.Hash and,
// through Read, an extendable-output mode. Create one with New or
// NewTagged; the zero value is not valid.
type Hasher struct {
	state    [stateWords]uint64
	buf      [BlockSize]byte
	absorbed int    // bytes buffered for the next block
	round    uint64 // monotonic round counter

	squeezing bool
	rateBuf   [BlockSize]byte
	readIdx   int

	tag []byte // retained so Reset can return to the post-tag state
}

// New returns a fresh streaming hasher.
func New() *Hasher {
	h := new(Hasher)
	h.Reset()
	return h
}

// NewTagged returns a streaming hasher whose input is domain-separated
// under tag. The tag is copied; Reset returns the hasher to the state
// just after the tag and separator were absorbed.
func NewTagged(tag []byte) *Hasher {
	h := new(Hasher)
	h.tag = append([]byte{}, tag...)
	h.Reset()
	return h
}

// Reset returns the hasher to its initial state. For tagged hashers that
// is the state with the tag and separator already written.
func (h *Hasher) Reset() {
	seedState(&h.state)
	h.absorbed = 0
	h.round = 0
	h.squeezing = false
	h.readIdx = 0
	if h.tag != nil {
		h.Write(h.tag)
		h.Write([]byte{0x00})
	}
}

// Write absorbs p into the sponge. It never fails.
// Panics if called after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.squeezing {
		panic("turb1600: Write after Read")
	}
	n := len(p)
	if h.absorbed > 0 {
		x := copy(h.buf[h.absorbed:], p)
		h.absorbed += x
		p = p[x:]
		if h.absorbed == BlockSize {
			h.absorbBlock(h.buf[:])
			h.absorbed = 0
		}
	}
	for len(p) >= BlockSize {
		h.absorbBlock(p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		h.absorbed = copy(h.buf[:], p)
	}
	return n, nil
}

func (h *Hasher) absorbBlock(block []byte) {
	xorBlock(&h.state, block)
	for i := 0; i < blockRounds; i++ {
		permuteRound(&h.state, h.round)
		h.round++
	}
}

// Sum appends the 128-byte digest to b and returns the resulting slice.
// It does not change the underlying state, so the caller may keep
// writing afterwards.
func (h *Hasher) Sum(b []byte) []byte {
	// Squeeze a copy so the original can continue absorbing.
	dup := *h
	var d [Size]byte
	dup.Read(d[:])
	return append(b, d[:]...)
}

// Read squeezes len(p) bytes from the sponge. The first call pads and
// finalizes the absorbed input; after that, Write panics. The first 128
// bytes of any longer read equal the Sum digest. It never returns an
// error.
func (h *Hasher) Read(p []byte) (int, error) {
	if !h.squeezing {
		h.finalize()
	}
	n := len(p)
	for len(p) > 0 {
		if h.readIdx == BlockSize {
			permuteRound(&h.state, h.round)
			h.round++
			extractRate(&h.state, h.rateBuf[:])
			h.readIdx = 0
		}
		x := copy(p, h.rateBuf[h.readIdx:])
		h.readIdx += x
		p = p[x:]
	}
	return n, nil
}

// finalize pads the buffered tail, absorbs it, runs the finalization
// rounds and fills the first rate extraction.
func (h *Hasher) finalize() {
	h.buf[h.absorbed] = 0x01
	for i := h.absorbed + 1; i < BlockSize; i++ {
		h.buf[i] = 0
	}
	if h.absorbed == BlockSize-1 {
		// The marker completed the block; the terminator closes a
		// full extra block of zeros.
		h.absorbBlock(h.buf[:])
		for i := range h.buf {
			h.buf[i] = 0
		}
	}
	h.buf[BlockSize-1] = 0x80
	h.absorbBlock(h.buf[:])

	finishRounds(&h.state, &h.round)
	extractRate(&h.state, h.rateBuf[:])
	h.readIdx = 0
	h.squeezing = true
}

// Size returns the digest size in bytes (128).
func (h *Hasher) Size() int { return Size }

// BlockSize returns the sponge rate in bytes (136).
func (h *Hasher) BlockSize() int { return BlockSize }
