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
	"encoding/json"
	"errors"
	"testing"
)

func checkError(t *testing.T, input string, got, want error) bool {
	if got == nil {
		if want != nil {
			t.Errorf("input %s: got no error, want %q", input, want)
			return false
		}
		return true
	}
	if want == nil {
		t.Errorf("input %s: unexpected error %q", input, got)
	} else if got.Error() != want.Error() {
		t.Errorf("input %s: got error %q, want %q", input, got, want)
	}
	return false
}

var errNonStringBytes = errors.New("json: cannot unmarshal non-string into Go value of type hexutil.Bytes")

var unmarshalBytesTests = []unmarshalTest{
	// invalid encoding
	{input: `null`, wantErr: errNonStringBytes},
	{input: `10`, wantErr: errNonStringBytes},
	{input: `"0"`, wantErr: &json.UnmarshalTypeError{Value: ErrMissingPrefix.Error(), Type: bytesT}},
	{input: `"0x0"`, wantErr: &json.UnmarshalTypeError{Value: ErrOddLength.Error(), Type: bytesT}},
	{input: `"0xxx"`, wantErr: &json.UnmarshalTypeError{Value: ErrSyntax.Error(), Type: bytesT}},
	{input: `"0x01zz01"`, wantErr: &json.UnmarshalTypeError{Value: ErrSyntax.Error(), Type: bytesT}},
	// valid encoding
	{input: `""`, want: referenceBytes("")},
	{input: `"0x"`, want: referenceBytes("")},
	{input: `"0x02"`, want: referenceBytes("02")},
	{input: `"0X02"`, want: referenceBytes("02")},
	{input: `"0xffffffffff"`, want: referenceBytes("ffffffffff")},
	{
		input: `"0xffffffffffffffffffffffffffffffffffff"`,
		want:  referenceBytes("ffffffffffffffffffffffffffffffffffff"),
	},
}

func referenceBytes(s string) []byte {
	b, err := Decode("0x" + s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestUnmarshalBytes(t *testing.T) {
	for _, test := range unmarshalBytesTests {
		var v Bytes
		err := json.Unmarshal([]byte(test.input), &v)
		if !checkError(t, test.input, err, test.wantErr) {
			continue
		}
		if !bytes.Equal(test.want.([]byte), v) {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, &v, test.want)
		}
	}
}

func TestMarshalBytes(t *testing.T) {
	for _, test := range []struct {
		input Bytes
		want  string
	}{
		{Bytes{}, `"0x"`},
		{Bytes{0, 1}, `"0x0001"`},
	} {
		out, err := json.Marshal(test.input)
		if err != nil {
			t.Errorf("%x: %v", test.input, err)
			continue
		}
		if string(out) != test.want {
			t.Errorf("%x: got %s, want %s", test.input, out, test.want)
		}
	}
}

func TestUnmarshalUint64(t *testing.T) {
	tests := []unmarshalTest{
		{input: `null`, wantErr: errors.New("json: cannot unmarshal non-string into Go value of type hexutil.Uint64")},
		{input: `"0x"`, wantErr: &json.UnmarshalTypeError{Value: ErrEmptyNumber.Error(), Type: uint64T}},
		{input: `"0x01"`, wantErr: &json.UnmarshalTypeError{Value: ErrLeadingZero.Error(), Type: uint64T}},
		{input: `"0xfffffffffffffffff"`, wantErr: &json.UnmarshalTypeError{Value: ErrUint64Range.Error(), Type: uint64T}},
		{input: `""`, want: uint64(0)},
		{input: `"0x0"`, want: uint64(0)},
		{input: `"0x2"`, want: uint64(0x2)},
		{input: `"0xbBb"`, want: uint64(0xbbb)},
		{input: `"0xffffffffffffffff"`, want: uint64(0xffffffffffffffff)},
	}
	for _, test := range tests {
		var v Uint64
		err := json.Unmarshal([]byte(test.input), &v)
		if !checkError(t, test.input, err, test.wantErr) {
			continue
		}
		if uint64(v) != test.want.(uint64) {
			t.Errorf("input %s: value mismatch: got %d, want %d", test.input, v, test.want)
		}
	}
}
