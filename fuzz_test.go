// Copyright © 2026 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

package chaskey

import (
	"bytes"
	"testing"
)

func FuzzMAC(f *testing.F) {
	key := []byte("my special key..")

	f.Add([]byte{}, 0, 16, byte(0x00), 0)
	f.Add([]byte("0123456789abcdef"), 7, 8, byte(0x01), 3)
	f.Fuzz(func(t *testing.T,
		msg []byte, split, tagLen int,
		noise byte, noiseIndex int,
	) {
		if len(msg) > 0x4000 {
			return
		}
		if tagLen < 1 || tagLen > TagSize {
			return
		}
		if split < 0 || split > len(msg) {
			return
		}

		tag, err := Tag(key, msg, tagLen)
		if err != nil {
			t.Fatal(err)
		}

		// streaming over any split point must agree with the one-shot form
		d, err := NewWithTagSize(key, tagLen)
		if err != nil {
			t.Fatal(err)
		}
		d.Write(msg[:split])
		d.Write(msg[split:])
		if got := d.Sum(nil); !bytes.Equal(got, tag) {
			t.Errorf("split write mismatch: got %x, want %x", got, tag)
		}

		ok, err := Verify(key, msg, tag)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Error("Verify rejected a correct tag")
		}

		if noise != 0 {
			i := noiseIndex % len(tag)
			if i < 0 {
				i = -i
			}
			tag[i] ^= noise
			ok, err := Verify(key, msg, tag)
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Error("Verify accepted a modified tag")
			}
			tag[i] ^= noise
		}
	})
}
