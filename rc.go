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

const (
	rcCount = 1024
	rcSeed  = 0x9E3779B97F4A7C15
)

// roundConstants breaks the symmetry between rounds. The table is filled
// once at package init from a fixed xorshift seed and is read-only after
// that, so unsynchronized concurrent hashing is safe.
var roundConstants = generateRoundConstants()

func generateRoundConstants() *[rcCount]uint64 {
	rc := new([rcCount]uint64)
	x := uint64(rcSeed)
	for i := range rc {
		x ^= x << 7
		x ^= x >> 9
		x ^= x << 8
		rc[i] = x
	}
	return rc
}
