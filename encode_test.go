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
	"bytes"
	"testing"

	"pgregory.net/rapid"
)

func TestPadWellFormed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.SliceOfN(rapid.Byte(), 0, 4*BlockSize).Draw(t, "msg").([]byte)
		padded := pad(msg)

		if len(padded) == 0 || len(padded)%BlockSize != 0 {
			t.Fatalf("padded length %d not a positive multiple of %d", len(padded), BlockSize)
		}
		if !bytes.Equal(padded[:len(msg)], msg) {
			t.Fatalf("message prefix changed")
		}
		if padded[len(padded)-1] != 0x80 {
			t.Fatalf("terminal byte %#x, want 0x80", padded[len(padded)-1])
		}
		if padded[len(msg)] != 0x01 {
			t.Fatalf("marker byte %#x, want 0x01", padded[len(msg)])
		}
		for i := len(msg) + 1; i < len(padded)-1; i++ {
			if padded[i] != 0x00 {
				t.Fatalf("nonzero filler %#x at %d", padded[i], i)
			}
		}
	})
}

func TestPadBoundary(t *testing.T) {
	// A message one byte short of a block gets the marker in the first
	// block and a whole extra block for the terminator.
	msg := patternBytes(BlockSize - 1)
	padded := pad(msg)
	if len(padded) != 2*BlockSize {
		t.Fatalf("padded length %d, want %d", len(padded), 2*BlockSize)
	}
	if padded[BlockSize-1] != 0x01 {
		t.Fatalf("marker not at end of first block")
	}

	// Empty input still pads to one full block.
	if got := len(pad(nil)); got != BlockSize {
		t.Fatalf("pad(nil) length %d, want %d", got, BlockSize)
	}
}

func TestApplyTag(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tag := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "tag").([]byte)
		msg := rapid.SliceOfN(rapid.Byte(), 0, 256).Draw(t, "msg").([]byte)

		out := applyTag(tag, msg)
		if len(out) != len(tag)+1+len(msg) {
			t.Fatalf("length %d, want %d", len(out), len(tag)+1+len(msg))
		}
		if !bytes.Equal(out[:len(tag)], tag) {
			t.Fatalf("tag prefix changed")
		}
		if out[len(tag)] != 0x00 {
			t.Fatalf("separator %#x, want 0x00", out[len(tag)])
		}
		if !bytes.Equal(out[len(tag)+1:], msg) {
			t.Fatalf("message suffix changed")
		}
	})
}

func TestAbsorbRejectsUnpadded(t *testing.T) {
	var (
		a     [stateWords]uint64
		round uint64
	)
	seedState(&a)
	for _, n := range []int{1, BlockSize - 1, BlockSize + 1, 0} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("absorb accepted %d unaligned bytes", n)
				}
			}()
			absorb(&a, &round, make([]byte, n))
		}()
	}
}
