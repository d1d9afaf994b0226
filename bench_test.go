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
	"testing"

	"golang.org/x/crypto/sha3"
)

// The SHA3-256 sponge shares the 136-byte rate, which makes it a useful
// per-block cost baseline.
func TestRateMatchesSha3(t *testing.T) {
	if bs := sha3.New256().BlockSize(); bs != BlockSize {
		t.Fatalf("sha3-256 rate %d, turb1600 rate %d", bs, BlockSize)
	}
}

func BenchmarkSum(b *testing.B) {
	for _, size := range []int{32, 136, 1024, 8192, 65536} {
		data := patternBytes(size)
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Sum(data)
			}
		})
	}
}

func BenchmarkHasher(b *testing.B) {
	data := patternBytes(8192)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	h := New()
	for i := 0; i < b.N; i++ {
		h.Reset()
		h.Write(data)
		var d [Size]byte
		h.Read(d[:])
	}
}

func BenchmarkSha3Baseline(b *testing.B) {
	data := patternBytes(8192)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h := sha3.New256()
		h.Write(data)
		h.Sum(nil)
	}
}
