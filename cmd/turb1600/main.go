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

// turb1600 is a command line tool for computing and verifying turb1600
// message digests.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/turbhash/turb1600"
	"github.com/turbhash/turb1600/common/hexutil"
	"github.com/turbhash/turb1600/internal/debug"
	"github.com/turbhash/turb1600/internal/flags"
	"github.com/turbhash/turb1600/internal/version"
	"github.com/turbhash/turb1600/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var (
	hexFlag = &cli.BoolFlag{
		Name:     "hex",
		Usage:    "Interpret the message argument as hex encoded bytes (with or without 0x prefix)",
		Category: flags.HashingCategory,
	}
	fileFlag = &cli.StringSliceFlag{
		Name:     "file",
		Usage:    "Hash the contents of the given file (\"-\" reads standard input), may be repeated",
		Category: flags.HashingCategory,
	}
	tagFlag = &cli.StringFlag{
		Name:     "tag",
		Usage:    "Domain tag mixed into the state ahead of the message",
		Category: flags.HashingCategory,
	}
	rawFlag = &cli.BoolFlag{
		Name:     "raw",
		Usage:    "Write the raw 128 digest bytes to stdout instead of hex",
		Category: flags.HashingCategory,
	}
	checkFlag = &cli.StringFlag{
		Name:     "check",
		Usage:    "Verify digests against a \"<hex>  <file>\" listing (\"-\" reads standard input)",
		Category: flags.HashingCategory,
	}
)

var app = flags.NewApp("turb1600 message digest tool")

func init() {
	app.Flags = flags.Merge(
		[]cli.Flag{hexFlag, fileFlag, tagFlag, rawFlag, checkFlag},
		debug.Flags,
	)
	app.Action = hash
	app.Commands = []*cli.Command{versionCommand}
	app.Before = func(ctx *cli.Context) error {
		flags.MigrateGlobalFlags(ctx)
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// hash dispatches on the input mode flags. Exactly one of the message
// argument, --file or --check must be given.
func hash(ctx *cli.Context) error {
	flags.CheckExclusive(ctx, fileFlag, checkFlag)
	flags.CheckExclusive(ctx, hexFlag, fileFlag)
	flags.CheckExclusive(ctx, rawFlag, checkFlag)

	var tag []byte
	if ctx.IsSet(tagFlag.Name) {
		tag = []byte(ctx.String(tagFlag.Name))
	}
	switch {
	case ctx.IsSet(checkFlag.Name):
		if ctx.NArg() > 0 {
			return fmt.Errorf("unexpected arguments with --%s", checkFlag.Name)
		}
		return verifyListing(ctx.String(checkFlag.Name), tag)
	case ctx.IsSet(fileFlag.Name):
		if ctx.NArg() > 0 {
			return fmt.Errorf("unexpected arguments with --%s", fileFlag.Name)
		}
		return hashFiles(ctx, ctx.StringSlice(fileFlag.Name), tag)
	default:
		if ctx.NArg() != 1 {
			return fmt.Errorf("need exactly one message argument, see --help")
		}
		return hashMessage(ctx, ctx.Args().First(), tag)
	}
}

func hashMessage(ctx *cli.Context, arg string, tag []byte) error {
	msg := []byte(arg)
	if ctx.Bool(hexFlag.Name) {
		var err error
		if msg, err = decodeHexArg(arg); err != nil {
			return fmt.Errorf("invalid hex message: %v", err)
		}
	}
	digest := digestOf(msg, tag)
	if ctx.Bool(rawFlag.Name) {
		_, err := os.Stdout.Write(digest[:])
		return err
	}
	fmt.Printf("%x\n", digest)
	return nil
}

// hashFiles hashes each named file concurrently and prints the results
// in the order the files were given.
func hashFiles(ctx *cli.Context, files []string, tag []byte) error {
	digests := make([]turb1600.Digest, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			data, err := readInput(name)
			if err != nil {
				return err
			}
			digests[i] = digestOf(data, tag)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, name := range files {
		if ctx.Bool(rawFlag.Name) {
			if _, err := os.Stdout.Write(digests[i][:]); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("%x  %s\n", digests[i], name)
	}
	return nil
}

// verifyListing re-hashes every file named in a "<hex>  <file>" listing
// and reports OK/FAILED per entry, sha256sum style.
func verifyListing(listing string, tag []byte) error {
	data, err := readInput(listing)
	if err != nil {
		return err
	}
	var (
		scanner = bufio.NewScanner(strings.NewReader(string(data)))
		lineno  int
		total   int
		failed  int
	)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		wantHex, name, ok := strings.Cut(line, "  ")
		if !ok {
			log.Warn("Skipping malformed listing line", "file", listing, "line", lineno)
			continue
		}
		want, err := decodeHexArg(wantHex)
		if err != nil || len(want) != turb1600.Size {
			log.Warn("Skipping listing line with bad digest", "file", listing, "line", lineno)
			continue
		}
		total++
		data, err := readInput(name)
		if err != nil {
			fmt.Printf("%s: FAILED open or read\n", name)
			failed++
			continue
		}
		digest := digestOf(data, tag)
		if digest != turb1600.BytesToDigest(want) {
			fmt.Printf("%s: FAILED\n", name)
			failed++
			continue
		}
		fmt.Printf("%s: OK\n", name)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d computed digests did NOT match", failed, total)
	}
	if total == 0 {
		return fmt.Errorf("no valid digest lines in %s", listing)
	}
	return nil
}

func digestOf(msg, tag []byte) turb1600.Digest {
	if tag != nil {
		return turb1600.SumTagged(tag, msg)
	}
	return turb1600.Sum(msg)
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// decodeHexArg accepts both 0x-prefixed and bare hex.
func decodeHexArg(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}

var versionCommand = &cli.Command{
	Action:    printVersion,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Category:  flags.MiscCategory,
	Description: `
The output of this command is supposed to be machine-readable.
`,
}

func printVersion(ctx *cli.Context) error {
	fmt.Println("turb1600")
	fmt.Println("Version:", version.WithMeta)
	if git, ok := version.VCS(); ok {
		fmt.Println("Git Commit:", git.Commit)
		fmt.Println("Git Commit Date:", git.Date)
	}
	fmt.Println("Architecture:", runtime.GOARCH)
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("Operating System:", runtime.GOOS)
	return nil
}
