// Copyright © 2026 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	chaskey "github.com/MikeMcPherson/go-chaskey"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[chaskeytag] %v\n", err)
	os.Exit(1)
}

var keyFlag = cli.StringFlag{
	Name: "key",
	Usage: "the 128-bit MAC key as 32 hex digits; supplied by the " +
		"key-provisioning side, never stored by this tool",
}

var tagCommand = cli.Command{
	Name:      "tag",
	Usage:     "Compute the Chaskey tag of a message.",
	ArgsUsage: "[--file=] [--tag-size=]",
	Description: `
	Read the message from --file (or stdin) and print its tag as hex.
	The tag covers the raw bytes as given; framing, sequence numbers
	and key handling belong to the caller.
	`,
	Flags: []cli.Flag{
		keyFlag,
		cli.StringFlag{
			Name:  "file",
			Usage: "read the message from this file instead of stdin",
		},
		cli.IntFlag{
			Name:  "tag-size",
			Usage: "tag truncation length in bytes, 1..16",
			Value: chaskey.TagSize,
		},
	},
	Action: computeTag,
}

var verifyCommand = cli.Command{
	Name:      "verify",
	Usage:     "Verify a Chaskey tag against a message.",
	ArgsUsage: "--tag=<hex> [--file=]",
	Description: `
	Recompute the tag over the message and compare it, in constant
	time, against --tag. Exits nonzero on mismatch.
	`,
	Flags: []cli.Flag{
		keyFlag,
		cli.StringFlag{
			Name:  "file",
			Usage: "read the message from this file instead of stdin",
		},
		cli.StringFlag{
			Name:  "tag",
			Usage: "expected tag as hex; its length selects the truncation",
		},
	},
	Action: verifyTag,
}

var subkeysCommand = cli.Command{
	Name:  "subkeys",
	Usage: "Print the derived finalization subkeys K1 and K2.",
	Description: `
	Derive K1 = 2K and K2 = 4K in GF(2^128) for cross-checking against
	a flight-side implementation that caches subkeys.
	`,
	Flags:  []cli.Flag{keyFlag},
	Action: printSubkeys,
}

func parseKey(ctx *cli.Context) ([]byte, error) {
	h := ctx.String("key")
	if h == "" {
		return nil, fmt.Errorf("--key is required")
	}
	key, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("bad --key: %w", err)
	}
	if len(key) != chaskey.KeySize {
		return nil, fmt.Errorf("bad --key: got %d bytes, want %d",
			len(key), chaskey.KeySize)
	}
	return key, nil
}

func readMessage(ctx *cli.Context) ([]byte, error) {
	if name := ctx.String("file"); name != "" {
		return os.ReadFile(name)
	}
	return io.ReadAll(os.Stdin)
}

func computeTag(ctx *cli.Context) error {
	key, err := parseKey(ctx)
	if err != nil {
		return err
	}
	msg, err := readMessage(ctx)
	if err != nil {
		return err
	}
	tag, err := chaskey.Tag(key, msg, ctx.Int("tag-size"))
	if err != nil {
		return err
	}
	fmt.Printf("%x\n", tag)
	return nil
}

func verifyTag(ctx *cli.Context) error {
	key, err := parseKey(ctx)
	if err != nil {
		return err
	}
	tag, err := hex.DecodeString(ctx.String("tag"))
	if err != nil {
		return fmt.Errorf("bad --tag: %w", err)
	}
	msg, err := readMessage(ctx)
	if err != nil {
		return err
	}
	ok, err := chaskey.Verify(key, msg, tag)
	if err != nil {
		return err
	}
	if !ok {
		return cli.NewExitError("tag mismatch", 1)
	}
	fmt.Println("OK")
	return nil
}

func printSubkeys(ctx *cli.Context) error {
	key, err := parseKey(ctx)
	if err != nil {
		return err
	}
	k1, k2, err := chaskey.DeriveSubkeys(key)
	if err != nil {
		return err
	}
	fmt.Printf("k1: %x\nk2: %x\n", k1, k2)
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "chaskeytag"
	app.Usage = "compute and verify Chaskey frame authentication tags"
	app.Commands = []cli.Command{
		tagCommand,
		verifyCommand,
		subkeysCommand,
	}
	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
