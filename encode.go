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

// pad returns msg extended to a positive multiple of BlockSize: one 0x01
// marker byte, zero bytes until the length is one short of a block
// boundary, then a terminal 0x80. The input slice is not modified.
//
// When len(msg) mod 136 == 135 the marker completes the current block and
// the terminator ends a full second block of zeros; the two bytes are
// never merged.
func pad(msg []byte) []byte {
	zeros := (-len(msg) - 2) % BlockSize
	if zeros < 0 {
		zeros += BlockSize
	}
	padded := make([]byte, len(msg)+zeros+2)
	copy(padded, msg)
	padded[len(msg)] = 0x01
	padded[len(padded)-1] = 0x80
	return padded
}

// applyTag prepends the domain tag and a zero separator byte to msg.
// A zero-length tag still yields the separator, so a tagged hash is
// always distinct from the untagged one.
func applyTag(tag, msg []byte) []byte {
	out := make([]byte, 0, len(tag)+1+len(msg))
	out = append(out, tag...)
	out = append(out, 0x00)
	return append(out, msg...)
}
