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

// Package turb1600 implements the turb1600 sponge hash.
//
// The hash absorbs arbitrary-length input into a 1600-bit state at a rate
// of 136 bytes per block, applying 16 mixing rounds per absorbed block and
// 4 finalization rounds, and squeezes a 1024-bit (128-byte) digest. An
// optional domain tag is prepended to the message, separated by a single
// zero byte, so that unrelated uses of the hash cannot collide.
//
// The transformation is fully deterministic: identical input yields a
// bit-identical digest on every platform. No claim is made about
// cryptographic strength; this package specifies a transformation, not a
// vetted primitive.
package turb1600

import "encoding/hex"

const (
	// Size is the digest size in bytes.
	Size = 128

	// BlockSize is the sponge rate in bytes: (1600 - 512) / 8 = 136.
	BlockSize = 136
)

const (
	stateWords  = 25 // 1600-bit state
	rateWords   = 17 // BlockSize / 8
	blockRounds = 16 // mixing rounds per absorbed block
	finalRounds = 4  // extra rounds after the last block
)

// Sum computes the 128-byte turb1600 digest of data.
func Sum(data []byte) Digest {
	return sumPadded(pad(data))
}

// SumTagged computes the digest of data under the given domain tag.
// The tag and message are joined by a zero separator byte, so a tagged
// digest never equals the plain digest of any concatenation of the two.
func SumTagged(tag, data []byte) Digest {
	return sumPadded(pad(applyTag(tag, data)))
}

// HashHex computes the digest of s and returns it as a plain lowercase
// hex string of 256 characters.
func HashHex(s string) string {
	d := Sum([]byte(s))
	return hex.EncodeToString(d[:])
}

// sumPadded runs the full sponge over an already padded message.
func sumPadded(padded []byte) Digest {
	var (
		a     [stateWords]uint64
		round uint64
	)
	seedState(&a)
	absorb(&a, &round, padded)
	finishRounds(&a, &round)

	var d Digest
	squeeze(&a, &round, d[:])
	return d
}
