// Copyright © 2026 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

package chaskey

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"hash"
)

var (
	// ErrKeySize reports a key that is not exactly KeySize bytes.
	ErrKeySize = errors.New("chaskey: wrong key size")
	// ErrTagSize reports a requested tag size outside 1..TagSize.
	ErrTagSize = errors.New("chaskey: invalid tag size")
)

// MAC computes Chaskey tags. It implements hash.Hash.
//
// A MAC derives the finalization subkeys once at construction and may
// be reused for many messages under the same key, either through Sum
// (which leaves the running state intact) or Reset. A MAC is not safe
// for concurrent use; independent MAC values are, as they share no
// mutable state.
type MAC struct {
	k       state // key words, kept for Reset
	k1, k2  state // finalization subkeys
	v       state // running state
	buf     [BlockSize]byte
	n       int // bytes in buf; the trailing block is retained here
	tagSize int
}

var _ hash.Hash = (*MAC)(nil)

// New returns a MAC producing full 16-byte tags.
func New(key []byte) (*MAC, error) {
	return NewWithTagSize(key, TagSize)
}

// NewWithTagSize returns a MAC producing tags truncated to tagSize
// bytes, 1 <= tagSize <= TagSize.
func NewWithTagSize(key []byte, tagSize int) (*MAC, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	if tagSize < 1 || tagSize > TagSize {
		return nil, fmt.Errorf("%w: %d", ErrTagSize, tagSize)
	}
	d := &MAC{tagSize: tagSize}
	d.k[0] = le32dec(key[0:])
	d.k[1] = le32dec(key[4:])
	d.k[2] = le32dec(key[8:])
	d.k[3] = le32dec(key[12:])
	d.k1 = d.k
	dbl(&d.k1)
	d.k2 = d.k1
	dbl(&d.k2)
	d.Reset()
	return d, nil
}

func (d *MAC) Size() int      { return d.tagSize }
func (d *MAC) BlockSize() int { return BlockSize }

// Reset discards the message absorbed so far. The key and subkeys are
// kept.
func (d *MAC) Reset() {
	d.v = d.k
	d.n = 0
}

func (d *MAC) absorb(b []byte) {
	d.v[0] ^= le32dec(b[0:])
	d.v[1] ^= le32dec(b[4:])
	d.v[2] ^= le32dec(b[8:])
	d.v[3] ^= le32dec(b[12:])
	d.v.permute()
}

// Write absorbs message bytes. Unlike a plain sponge, the trailing
// block must not be absorbed until finalization: a message that ends
// exactly on a block boundary routes its last block through the K1
// path instead. The buffer is therefore flushed lazily, only once
// further input proves a full block was not the final one.
func (d *MAC) Write(p []byte) (int, error) {
	written := len(p)
	if len(p) == 0 {
		return 0, nil
	}
	if d.n == BlockSize {
		d.absorb(d.buf[:])
		d.n = 0
	}
	if d.n > 0 {
		n := copy(d.buf[d.n:], p)
		d.n += n
		p = p[n:]
		if len(p) == 0 {
			return written, nil
		}
		d.absorb(d.buf[:])
		d.n = 0
	}
	for len(p) > BlockSize {
		d.absorb(p[:BlockSize])
		p = p[BlockSize:]
	}
	d.n = copy(d.buf[:], p)
	return written, nil
}

// finish selects the trailing block and subkey, then runs the last
// permutation. A message ending on a block boundary (and only such a
// message) leaves a full buffer here and takes the K1 path; everything
// else, the empty message included, is padded with 0x01 and zeroes and
// takes the K2 path.
func (d *MAC) finish() {
	if d.n > BlockSize {
		panic("chaskey: internal error")
	}

	l := &d.k1
	if d.n != BlockSize {
		for i := d.n + 1; i < BlockSize; i++ {
			d.buf[i] = 0
		}
		d.buf[d.n] = 0x01
		l = &d.k2
	}

	d.v[0] ^= le32dec(d.buf[0:]) ^ l[0]
	d.v[1] ^= le32dec(d.buf[4:]) ^ l[1]
	d.v[2] ^= le32dec(d.buf[8:]) ^ l[2]
	d.v[3] ^= le32dec(d.buf[12:]) ^ l[3]

	d.v.permute()

	d.v[0] ^= l[0]
	d.v[1] ^= l[1]
	d.v[2] ^= l[2]
	d.v[3] ^= l[3]
}

// Sum appends the tag of the message absorbed so far to b and returns
// the resulting slice. It does not change the underlying state, so
// more bytes may be written afterwards.
func (d0 *MAC) Sum(b []byte) []byte {
	d := *d0
	d.finish()

	var tag [TagSize]byte
	le32enc(tag[0:], d.v[0])
	le32enc(tag[4:], d.v[1])
	le32enc(tag[8:], d.v[2])
	le32enc(tag[12:], d.v[3])
	return append(b, tag[:d.tagSize]...)
}

// Tag computes the tagLen-byte Chaskey tag of message under key.
func Tag(key, message []byte, tagLen int) ([]byte, error) {
	d, err := NewWithTagSize(key, tagLen)
	if err != nil {
		return nil, err
	}
	d.Write(message)
	return d.Sum(nil), nil
}

// Verify reports whether tag is the Chaskey tag of message under key,
// comparing in constant time. The truncation length is taken from
// len(tag).
func Verify(key, message, tag []byte) (bool, error) {
	want, err := Tag(key, message, len(tag))
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(tag, want) == 1, nil
}
