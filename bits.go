// Copyright © 2026 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

// byte manipulation
//
// Word order is a wire-format requirement: message bytes are decoded
// into state words little-endian, and tag bytes are encoded the same
// way, so behavior matches the deployed reference on every platform.

package chaskey

import "encoding/binary"

func le32dec(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func le32enc(b []byte, x uint32) {
	binary.LittleEndian.PutUint32(b, x)
}
