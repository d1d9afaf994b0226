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

import "encoding/binary"

// seedString is folded into the fresh state so that this construction
// cannot share outputs with an unrelated sponge over the same state size.
var seedString = []byte("turb1600 | sponge-hash | state=1600 | rate=1088 | capacity=512 | output=1024 | v1")

// seedState zeroes the state and folds in the seed string, byte i going
// into lane i mod 25 as uint64(b) + uint64(i).
func seedState(a *[stateWords]uint64) {
	*a = [stateWords]uint64{}
	for i, b := range seedString {
		a[i%stateWords] ^= uint64(b) + uint64(i)
	}
}

// xorBlock XORs one 136-byte block into the rate lanes 0..16 in
// little-endian order. The capacity lanes 17..24 are never touched
// during absorption.
func xorBlock(a *[stateWords]uint64, block []byte) {
	for i := 0; i < rateWords; i++ {
		a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
}

// extractRate serializes the rate lanes 0..16 into out, little-endian.
// out must hold at least BlockSize bytes.
func extractRate(a *[stateWords]uint64, out []byte) {
	for i := 0; i < rateWords; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], a[i])
	}
}
