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

package hexutil

import (
	"bytes"
	"testing"
)

type unmarshalTest struct {
	input   string
	want    interface{}
	wantErr error
}

var decodeBytesTests = []unmarshalTest{
	// invalid
	{input: ``, wantErr: ErrEmptyString},
	{input: `0`, wantErr: ErrMissingPrefix},
	{input: `0x0`, wantErr: ErrOddLength},
	{input: `0x023`, wantErr: ErrOddLength},
	{input: `0xxx`, wantErr: ErrSyntax},
	{input: `0x01zz01`, wantErr: ErrSyntax},
	// valid
	{input: `0x`, want: []byte{}},
	{input: `0X`, want: []byte{}},
	{input: `0x02`, want: []byte{0x02}},
	{input: `0X02`, want: []byte{0x02}},
	{input: `0xffffffffff`, want: []byte{0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeBytesTests {
		dec, err := Decode(test.input)
		if test.wantErr != nil {
			if err != test.wantErr {
				t.Errorf("input %s: error mismatch: got %q, want %q", test.input, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %s: unexpected error %q", test.input, err)
			continue
		}
		if !bytes.Equal(test.want.([]byte), dec) {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, dec, test.want)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		input []byte
		want  string
	}{
		{[]byte{}, "0x"},
		{[]byte{0}, "0x00"},
		{[]byte{0, 0, 1, 2}, "0x00000102"},
	}
	for _, test := range tests {
		if enc := Encode(test.input); enc != test.want {
			t.Errorf("input %x: wrong encoding %s", test.input, enc)
		}
	}
}

func TestDecodeUint64(t *testing.T) {
	tests := []unmarshalTest{
		{input: ``, wantErr: ErrEmptyString},
		{input: `0x`, wantErr: ErrEmptyNumber},
		{input: `0x01`, wantErr: ErrLeadingZero},
		{input: `0xfffffffffffffffff`, wantErr: ErrUint64Range},
		{input: `0xx`, wantErr: ErrSyntax},
		{input: `0x0`, want: uint64(0)},
		{input: `0x2`, want: uint64(0x2)},
		{input: `0x2F2`, want: uint64(0x2f2)},
		{input: `0xbbb`, want: uint64(0xbbb)},
		{input: `0xffffffffffffffff`, want: uint64(0xffffffffffffffff)},
	}
	for _, test := range tests {
		dec, err := DecodeUint64(test.input)
		if test.wantErr != nil {
			if err != test.wantErr {
				t.Errorf("input %s: error mismatch: got %q, want %q", test.input, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %s: unexpected error %q", test.input, err)
			continue
		}
		if dec != test.want.(uint64) {
			t.Errorf("input %s: value mismatch: got %d, want %d", test.input, dec, test.want)
		}
	}
}
