// Package crc16 implements the parameterized family of 16-bit cyclic
// redundancy checks.
//
// A variant of the family is described by five parameters (see Params):
// generator polynomial, initial register value, input reflection, output
// reflection and a final XOR mask. The engine is the bit-serial reference
// form of the algorithm: polynomial long division modulo two, carried out
// MSB-first one bit at a time, with no lookup tables. Any variant from the
// public CRC catalogue is reproduced by supplying its parameters; the
// presets in this package cover the attested ones this module ships with.
package crc16

import (
	"github.com/vuuvv/vbits/bitswap"
)

// Size of a CRC-16 checksum in bytes.
const Size = 2

// Update returns the register value after folding the bytes of p into crc.
// The returned value is the raw polynomial remainder; apply Complete to turn
// it into the publicized checksum. Splitting p across several Update calls
// yields the same register as a single call over the concatenation.
func Update(crc uint16, params Params, p []byte) uint16 {
	for _, d := range p {
		if params.RefIn {
			d = bitswap.Reflect8(d)
		}

		// Fold the byte into the high half of the register. This virtually
		// appends it (extended with 8 zero bits) to the already-divided
		// message, so the 8 shift steps below fully account for its
		// contribution to the remainder.
		crc ^= uint16(d) << 8

		for bit := 0; bit < 8; bit++ {
			// The polynomial's degree-16 coefficient is implicit and always
			// 1, so whenever the register's MSb is set the division step
			// cancels it. Either way the MSb is simply shifted out.
			apply := crc&0x8000 != 0
			crc <<= 1
			if apply {
				crc ^= params.Poly
			}
		}
	}
	return crc
}

// Complete turns a raw register value into the publicized checksum by
// applying the variant's output reflection and XOR mask. It is pure: the
// register value passed in is not consumed, so a running computation can be
// completed at any point and then continued.
func Complete(crc uint16, params Params) uint16 {
	if params.RefOut {
		crc = bitswap.Reflect16(crc)
	}
	return crc ^ params.XorOut
}

// Checksum returns the CRC-16 of p for the given variant.
func Checksum(p []byte, params Params) uint16 {
	return Complete(Update(params.Init, params, p), params)
}
