// Package gf implements the GF(2⁸) arithmetic the AES round function and key schedule need,
// backed by the precomputed product table.
package gf

import "git.gammaspectra.live/P2Pool/aes128/aes128/internal/tables"

// Mul multiplies a and b in GF(2⁸) modulo x⁸ + x⁴ + x³ + x + 1
func Mul(a, b byte) byte {
	return tables.Product[uint16(a)<<8|uint16(b)]
}

// Add is addition (and subtraction) in GF(2⁸)
func Add(a, b byte) byte {
	return a ^ b
}

// Xtime multiplies a by x, {02}
func Xtime(a byte) byte {
	return Mul(a, 0x02)
}

// Rcon round constant for key schedule round i, x^(i-1) built by repeated doubling from {01}.
// Round 0 has no constant and returns 0.
func Rcon(i uint8) byte {
	if i == 0 {
		return 0
	}
	r := byte(0x01)
	for ; i > 1; i-- {
		r = Xtime(r)
	}
	return r
}
