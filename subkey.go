// Copyright © 2026 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

package chaskey

// dbl doubles a 128-bit value in GF(2^128): a one-bit left shift
// across the four words, with the shifted-out bit folded back in via
// the reduction constant rb. Doubling is linear over XOR:
// dbl(a)^dbl(b) == dbl(a^b).
func dbl(s *state) {
	carry := s[3] >> 31
	s[3] = s[3]<<1 | s[2]>>31
	s[2] = s[2]<<1 | s[1]>>31
	s[1] = s[1]<<1 | s[0]>>31
	// branchless reduction; the value being doubled is the key
	s[0] = s[0]<<1 ^ carry*rb
}

// DeriveSubkeys computes the finalization subkeys K1 = 2·K and
// K2 = 4·K, which domain-separate the full-block and padded-block
// handling of the trailing message block. Both are pure functions of
// the key; New derives and caches them itself, so this is only needed
// by systems that persist subkeys separately.
func DeriveSubkeys(key []byte) (k1, k2 [KeySize]byte, err error) {
	if len(key) != KeySize {
		return k1, k2, ErrKeySize
	}
	var s state
	s[0] = le32dec(key[0:])
	s[1] = le32dec(key[4:])
	s[2] = le32dec(key[8:])
	s[3] = le32dec(key[12:])
	dbl(&s)
	for i, v := range s {
		le32enc(k1[4*i:], v)
	}
	dbl(&s)
	for i, v := range s {
		le32enc(k2[4*i:], v)
	}
	return k1, k2, nil
}
