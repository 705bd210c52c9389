// Copyright © 2026 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

package chaskey

const (
	KeySize   = 128 / 8 // bytes
	TagSize   = 128 / 8 // bytes
	BlockSize = 128 / 8 // bytes
)

// Rounds is the number of ARX rounds applied by one permutation call.
// This is the original 8-round Chaskey; Chaskey-12 uses the same round
// function with a different count and is not interoperable.
const Rounds = 8

// rb represents the reduction polynomial x^128 + x^7 + x^2 + x + 1
// used for doubling in GF(2^128).
const rb = 0x87
