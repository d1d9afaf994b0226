// Copyright 2024 The turb1600 Authors
// This file is part of turb1600.
//
// turb1600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// turb1600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with turb1600. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/turbhash/turb1600"
)

const (
	abcDigest      = "3c060f6cf8ef90da89b6ed3864fe406a4b3bde1151be5ef84fbe7d6535d9661528b5e1b5e723d13029abc3ad2c97a8dd382be9ad5d26e3e851253513d27414e5424f246479c3b0cf0b1eec5459c90ec29af2db3dc20a07530d7da560bd36b611c7a11e84efeef549498d8112dc5ccc6c3adec2fbffa4ed673bac83a6348c6f32"
	abcEmailDigest = "b0a4131afa9784d948687e0bf80c0b2dfb8d44ef2869dcffa34bcb9b280b78c7b5facca923c7d7380cf33de383a3c85c0ef682f48591429898b8a4ffb75bae9434a683715f6a4d8e51561edd2e40699e349511072de6a47299de3639b40b24686ef2b3972f27518460a37292de483a1762ba2b39f85ff025d6e849b2d4603815"
)

func TestHashString(t *testing.T) {
	tt := runTool(t, "abc")
	tt.Expect(abcDigest + "\n")
	tt.ExpectExit()
}

func TestHashHexInput(t *testing.T) {
	for _, arg := range []string{"616263", "0x616263"} {
		tt := runTool(t, "--hex", arg)
		tt.Expect(abcDigest + "\n")
		tt.ExpectExit()
	}
}

func TestHashHexInputInvalid(t *testing.T) {
	tt := runTool(t, "--hex", "0xzz")
	tt.ExpectExit()
	if tt.ExitStatus() != 1 {
		t.Errorf("exit status %d, want 1", tt.ExitStatus())
	}
}

func TestHashTagged(t *testing.T) {
	tt := runTool(t, "--tag", "email", "abc")
	tt.Expect(abcEmailDigest + "\n")
	tt.ExpectExit()
}

func TestHashRaw(t *testing.T) {
	tt := runTool(t, "--raw", "abc")
	want, _ := hex.DecodeString(abcDigest)
	if out := tt.Output(); !bytes.Equal(out, want) {
		t.Errorf("raw output mismatch:\ngot  %x\nwant %x", out, want)
	}
	tt.ExpectExit()
}

func TestHashFiles(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	two := filepath.Join(dir, "two.txt")
	if err := os.WriteFile(one, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(two, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}
	twoDigest := turb1600.Sum([]byte("hello world"))

	tt := runTool(t, "--file", one, "--file", two)
	tt.Expect(abcDigest + "  " + one + "\n" + hex.EncodeToString(twoDigest[:]) + "  " + two + "\n")
	tt.ExpectExit()
}

func TestHashStdin(t *testing.T) {
	tt := runTool(t, "--file", "-")
	tt.InputLine("abc")
	tt.CloseStdin()
	// InputLine appends a newline, so the hashed message is "abc\n".
	want := turb1600.Sum([]byte("abc\n"))
	tt.Expect(hex.EncodeToString(want[:]) + "  -\n")
	tt.ExpectExit()
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	if err := os.WriteFile(one, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	listing := filepath.Join(dir, "SUMS")
	if err := os.WriteFile(listing, []byte(abcDigest+"  "+one+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tt := runTool(t, "--check", listing)
	tt.Expect(one + ": OK\n")
	tt.ExpectExit()
	if tt.ExitStatus() != 0 {
		t.Errorf("exit status %d, want 0", tt.ExitStatus())
	}
}

func TestCheckFailure(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	if err := os.WriteFile(one, []byte("tampered"), 0644); err != nil {
		t.Fatal(err)
	}
	listing := filepath.Join(dir, "SUMS")
	if err := os.WriteFile(listing, []byte(abcDigest+"  "+one+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tt := runTool(t, "--check", listing)
	tt.Expect(one + ": FAILED\n")
	tt.ExpectExit()
	if tt.ExitStatus() != 1 {
		t.Errorf("exit status %d, want 1", tt.ExitStatus())
	}
}

func TestVersion(t *testing.T) {
	tt := runTool(t, "version")
	tt.ExpectRegexp(`turb1600\nVersion: 1\.0\.0-unstable\n(Git Commit: .*\n)?(Git Commit Date: .*\n)?Architecture: \w+\nGo Version: go\S+\nOperating System: \w+\n`)
	tt.ExpectExit()
}
