// Package utils holds small conversion helpers shared by the command line
// tools.
package utils

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
	"strconv"
	"strings"

	"github.com/vuuvv/errors"
	"golang.org/x/exp/constraints"
)

// UintToBytes renders u as size big-endian bytes (or little-endian when
// order says so). size must cover the value; high bytes are zero padded.
func UintToBytes[T constraints.Integer](u T, size int, order binary.ByteOrder) []byte {
	data := make([]byte, 8)
	order.PutUint64(data, uint64(u))

	switch order {
	case binary.LittleEndian:
		return data[:size]
	default:
		return data[8-size:]
	}
}

// ParseTypedValue parses a typed literal of the form T'xxx' into the byte
// sequence it denotes. The type identifier selects the notation:
//
//	b'10000000'  binary        -> 0x80
//	o'377'       octal         -> 0xff
//	d'4660'      decimal       -> 0x12 0x34
//	x'1021'      hexadecimal   -> 0x10 0x21
//	s'123456789' ASCII string  -> the string's bytes
//
// Input without the T'xxx' wrapper is treated as plain hexadecimal. Numeric
// literals yield the minimal big-endian byte sequence holding the value.
func ParseTypedValue(input string) ([]byte, error) {
	typeID := "x"
	dataStr := input

	if len(input) >= 3 && input[1] == '\'' && input[len(input)-1] == '\'' {
		typeID = strings.ToLower(string(input[0]))
		dataStr = input[2 : len(input)-1]
	}

	switch typeID {
	case "b":
		return parseUintBytes(dataStr, 2)

	case "o":
		return parseUintBytes(dataStr, 8)

	case "d":
		return parseUintBytes(dataStr, 10)

	case "x", "h":
		hexStr := strings.TrimPrefix(dataStr, "0x")
		if len(hexStr)%2 != 0 {
			hexStr = "0" + hexStr
		}
		value, err := hex.DecodeString(hexStr)
		if err != nil {
			return nil, errors.Errorf("invalid hex literal '%s': %v", dataStr, err)
		}
		return value, nil

	case "s":
		return []byte(dataStr), nil

	default:
		return nil, errors.Errorf("unrecognized type identifier '%s': expected b, o, d, x, h, or s", typeID)
	}
}

func parseUintBytes(dataStr string, base int) ([]byte, error) {
	u, err := strconv.ParseUint(dataStr, base, 64)
	if err != nil {
		return nil, errors.Errorf("invalid base-%d literal '%s': %v", base, dataStr, err)
	}
	size := (bits.Len64(u) + 7) / 8
	if size == 0 {
		size = 1
	}
	return UintToBytes(u, size, binary.BigEndian), nil
}
