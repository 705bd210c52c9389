// Copyright © 2026 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

package chaskey

import "math/bits"

// https://eprint.iacr.org/2014/386.pdf

type state [4]uint32

// permute applies the Chaskey permutation: Rounds identical ARX rounds
// over the 128-bit state. The round function is SipHash's, reduced to
// 32-bit words (Section 3 of the paper). There are no round constants.
func (s *state) permute() {
	v0, v1, v2, v3 := s[0], s[1], s[2], s[3]

	for i := 0; i < Rounds; i++ {
		v0 += v1
		v1 = bits.RotateLeft32(v1, 5)
		v1 ^= v0
		v0 = bits.RotateLeft32(v0, 16)

		v2 += v3
		v3 = bits.RotateLeft32(v3, 8)
		v3 ^= v2

		v0 += v3
		v3 = bits.RotateLeft32(v3, 13)
		v3 ^= v0

		v2 += v1
		v1 = bits.RotateLeft32(v1, 7)
		v1 ^= v2
		v2 = bits.RotateLeft32(v2, 16)
	}

	s[0], s[1], s[2], s[3] = v0, v1, v2, v3
}
