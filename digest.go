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

import (
	"fmt"
	"reflect"

	"github.com/turbhash/turb1600/common/hexutil"
)

// Digest is the 128-byte output of the hash.
type Digest [Size]byte

var digestT = reflect.TypeOf(Digest{})

// BytesToDigest sets b to a Digest. If b is larger than Size, it is
// cropped from the left; if smaller, it is left-padded with zeros.
func BytesToDigest(b []byte) Digest {
	var d Digest
	if len(b) > Size {
		b = b[len(b)-Size:]
	}
	copy(d[Size-len(b):], b)
	return d
}

// HexToDigest parses s as a 0x-prefixed hex digest.
// It panics for invalid input.
func HexToDigest(s string) Digest {
	return BytesToDigest(hexutil.MustDecode(s))
}

// Bytes returns the digest as a byte slice.
func (d Digest) Bytes() []byte { return d[:] }

// Hex returns the digest as a 0x-prefixed lowercase hex string.
func (d Digest) Hex() string { return hexutil.Encode(d[:]) }

// String implements fmt.Stringer.
func (d Digest) String() string { return d.Hex() }

// Format implements fmt.Formatter.
// Digest supports the %v, %s, %q, %x and %X verbs.
func (d Digest) Format(s fmt.State, c rune) {
	hexb := make([]byte, 2+Size*2)
	copy(hexb, "0x")
	hexEncode(hexb[2:], d[:], c == 'X')

	switch c {
	case 'x', 'X':
		if !s.Flag('#') {
			hexb = hexb[2:]
		}
		s.Write(hexb)
	case 'v', 's':
		s.Write(hexb)
	case 'q':
		q := []byte{'"'}
		s.Write(q)
		s.Write(hexb)
		s.Write(q)
	default:
		fmt.Fprintf(s, "%%!%c(turb1600.Digest=%x)", c, d[:])
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return hexutil.Bytes(d[:]).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Digest", input, d[:])
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Digest) UnmarshalJSON(input []byte) error {
	return hexutil.UnmarshalFixedJSON(digestT, input, d[:])
}

func hexEncode(dst, src []byte, upper bool) {
	digits := "0123456789abcdef"
	if upper {
		digits = "0123456789ABCDEF"
	}
	for i, b := range src {
		dst[i*2] = digits[b>>4]
		dst[i*2+1] = digits[b&0x0f]
	}
}
