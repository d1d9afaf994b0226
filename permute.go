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

import "math/bits"

// rotations holds the per-position left-rotation offsets applied together
// with the (i*7 mod 25) lane relocation.
var rotations = [stateWords]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// permuteRound applies one mixing round to the state in place: column
// parity diffusion, combined rotate+relocate, row-wise nonlinear mixing,
// and round constant injection into lane 0. The state is a 5x5 lane grid
// indexed x + 5*y. Only 64-bit shifts, rotations and boolean operations
// are used, so the result is bit-identical on every platform.
func permuteRound(a *[stateWords]uint64, round uint64) {
	// Theta: every lane absorbs the parity of its two neighbor columns.
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	var d [5]uint64
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	for i := 0; i < stateWords; i++ {
		a[i] ^= d[i%5]
	}

	// Rho and pi folded into one pass: rotate each lane by its fixed
	// offset and move it to position (i*7) mod 25.
	var b [stateWords]uint64
	for i := 0; i < stateWords; i++ {
		b[(i*7)%stateWords] = bits.RotateLeft64(a[i], rotations[i])
	}

	// Chi: the only nonlinear layer, applied within each row of 5.
	for i := 0; i < stateWords; i += 5 {
		r0, r1, r2, r3, r4 := b[i], b[i+1], b[i+2], b[i+3], b[i+4]
		a[i] = r0 ^ (^r1 & r2)
		a[i+1] = r1 ^ (^r2 & r3)
		a[i+2] = r2 ^ (^r3 & r4)
		a[i+3] = r3 ^ (^r4 & r0)
		a[i+4] = r4 ^ (^r0 & r1)
	}

	// Iota.
	a[0] ^= roundConstants[round%rcCount]
}
