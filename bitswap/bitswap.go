// Package bitswap provides bit-order and byte-order reversal for fixed-width
// unsigned integers.
//
// Reversal is done by divide-and-conquer field swapping: at each stage the
// value is split into two interleaved fields by an alternating mask and the
// fields trade places, halving the swap granularity until adjacent single
// bits (or, for the byte swaps, adjacent bytes) have been exchanged. This
// takes log2(W) stages instead of W single-bit shifts.
package bitswap

// Reflect8 reverses the bit order of v (bit 0 <-> bit 7, bit 1 <-> bit 6, ...).
func Reflect8(v uint8) uint8 {
	v = (v&0xf0)>>4 | (v&0x0f)<<4
	v = (v&0xcc)>>2 | (v&0x33)<<2
	v = (v&0xaa)>>1 | (v&0x55)<<1
	return v
}

// Reflect16 reverses the bit order of v.
func Reflect16(v uint16) uint16 {
	v = (v&0xff00)>>8 | (v&0x00ff)<<8
	v = (v&0xf0f0)>>4 | (v&0x0f0f)<<4
	v = (v&0xcccc)>>2 | (v&0x3333)<<2
	v = (v&0xaaaa)>>1 | (v&0x5555)<<1
	return v
}

// Reflect32 reverses the bit order of v.
func Reflect32(v uint32) uint32 {
	v = (v&0xffff0000)>>16 | (v&0x0000ffff)<<16
	v = (v&0xff00ff00)>>8 | (v&0x00ff00ff)<<8
	v = (v&0xf0f0f0f0)>>4 | (v&0x0f0f0f0f)<<4
	v = (v&0xcccccccc)>>2 | (v&0x33333333)<<2
	v = (v&0xaaaaaaaa)>>1 | (v&0x55555555)<<1
	return v
}

// Reflect64 reverses the bit order of v.
func Reflect64(v uint64) uint64 {
	v = (v&0xffffffff00000000)>>32 | (v&0x00000000ffffffff)<<32
	v = (v&0xffff0000ffff0000)>>16 | (v&0x0000ffff0000ffff)<<16
	v = (v&0xff00ff00ff00ff00)>>8 | (v&0x00ff00ff00ff00ff)<<8
	v = (v&0xf0f0f0f0f0f0f0f0)>>4 | (v&0x0f0f0f0f0f0f0f0f)<<4
	v = (v&0xcccccccccccccccc)>>2 | (v&0x3333333333333333)<<2
	v = (v&0xaaaaaaaaaaaaaaaa)>>1 | (v&0x5555555555555555)<<1
	return v
}

// ByteSwap16 reverses the byte order of v.
func ByteSwap16(v uint16) uint16 {
	return (v&0xff00)>>8 | (v&0x00ff)<<8
}

// ByteSwap32 reverses the byte order of v.
func ByteSwap32(v uint32) uint32 {
	v = (v&0xffff0000)>>16 | (v&0x0000ffff)<<16
	v = (v&0xff00ff00)>>8 | (v&0x00ff00ff)<<8
	return v
}

// ByteSwap64 reverses the byte order of v.
func ByteSwap64(v uint64) uint64 {
	v = (v&0xffffffff00000000)>>32 | (v&0x00000000ffffffff)<<32
	v = (v&0xffff0000ffff0000)>>16 | (v&0x0000ffff0000ffff)<<16
	v = (v&0xff00ff00ff00ff00)>>8 | (v&0x00ff00ff00ff00ff)<<8
	return v
}
