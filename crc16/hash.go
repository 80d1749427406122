package crc16

import (
	"hash"

	"github.com/vuuvv/errors"
)

// This file adapts the engine to the go standard library hash.Hash interface.

// Hash16 is the common interface implemented by all 16-bit hash functions.
type Hash16 interface {
	hash.Hash
	Sum16() uint16
}

// digest is one running computation: the immutable parameter set plus the
// single mutable 16-bit register.
type digest struct {
	crc    uint16
	params Params
}

// Write adds more data to the running digest.
// It never returns an error.
func (h *digest) Write(p []byte) (int, error) {
	h.crc = Update(h.crc, h.params, p)
	return len(p), nil
}

// Sum appends the current digest (leftmost byte first, big-endian)
// to b and returns the resulting slice.
// It does not change the underlying digest state.
func (h *digest) Sum(b []byte) []byte {
	s := h.Sum16()
	return append(b, byte(s>>8), byte(s))
}

// Reset resets the Hash to its initial state.
func (h *digest) Reset() {
	h.crc = h.params.Init
}

// Size returns the number of bytes Sum will return.
func (h *digest) Size() int {
	return Size
}

// BlockSize returns the underlying block size.
func (h *digest) BlockSize() int {
	return 1
}

// Sum16 returns the checksum of the data written so far. It is a snapshot
// read, not a finalization: it may be called repeatedly and interleaved with
// further Write calls. Before any data is written it returns the checksum of
// the empty message for the configured variant.
func (h *digest) Sum16() uint16 {
	return Complete(h.crc, h.params)
}

// New creates a new CRC-16 digest for the given parameter set.
func New(params Params) Hash16 {
	h := &digest{params: params}
	h.Reset()
	return h
}

// NewByName creates a new CRC-16 digest for a registered variant key.
func NewByName(name string) (Hash16, error) {
	params, err := ByName(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return New(params), nil
}
