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
	"fmt"
	"os"
	"testing"

	"github.com/docker/docker/pkg/reexec"
	"github.com/turbhash/turb1600/internal/cmdtest"
)

type testTool struct {
	*cmdtest.TestCmd
}

// spawns the tool with the given command line args
func runTool(t *testing.T, args ...string) *testTool {
	tt := &testTool{cmdtest.NewTestCmd(t, nil)}
	tt.Run("turb1600-test", args...)
	return tt
}

func TestMain(m *testing.M) {
	// Run the app if we've been exec'd as "turb1600-test" in runTool.
	reexec.Register("turb1600-test", func() {
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	})
	// check if we have been reexec'd
	if reexec.Init() {
		return
	}
	os.Exit(m.Run())
}
