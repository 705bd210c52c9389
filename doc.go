// Package chaskey implements the Chaskey message authentication code,
// a permutation-based MAC designed for 32-bit microcontrollers.
//
// https://eprint.iacr.org/2014/386
package chaskey
