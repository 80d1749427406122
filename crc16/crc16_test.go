package crc16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vuuvv/vbits/bitswap"
)

var catalogueMessage = []byte("123456789")

func TestChecksumCatalogue(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   uint16
	}{
		{"xmodem", CRC16_XMODEM, 0x31c3},
		{"kermit", CRC16_KERMIT, 0x2189},
		{"ibm-3740", CRC16_IBM_3740, 0x29b1},
		{"spi-fujitsu", CRC16_SPI_FUJITSU, 0xe5cc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(catalogueMessage, tt.params))
			assert.Equal(t, tt.want, tt.params.Check, "preset carries its own check value")
		})
	}
}

// With no input the checksum is the finalized init value.
func TestChecksumEmptyMessage(t *testing.T) {
	for _, params := range []Params{CRC16_XMODEM, CRC16_KERMIT, CRC16_IBM_3740, CRC16_SPI_FUJITSU} {
		t.Run(params.Name, func(t *testing.T) {
			want := params.Init
			if params.RefOut {
				want = bitswap.Reflect16(want)
			}
			want ^= params.XorOut

			assert.Equal(t, want, Checksum(nil, params))
			assert.Equal(t, want, Checksum([]byte{}, params))

			h := New(params)
			assert.Equal(t, want, h.Sum16())
		})
	}
}

// Splitting the input across Write calls must not change the result.
func TestChunkInvariance(t *testing.T) {
	message := []byte("The quick brown fox jumps over the lazy dog")

	for _, params := range []Params{CRC16_XMODEM, CRC16_KERMIT, CRC16_IBM_3740, CRC16_SPI_FUJITSU} {
		t.Run(params.Name, func(t *testing.T) {
			want := Checksum(message, params)

			for k := 0; k <= len(message); k++ {
				h := New(params)
				_, err := h.Write(message[:k])
				require.NoError(t, err)
				_, err = h.Write(message[k:])
				require.NoError(t, err)
				assert.Equal(t, want, h.Sum16(), "split at %d", k)
			}

			// Byte-at-a-time degenerate chunking.
			h := New(params)
			for _, b := range message {
				_, _ = h.Write([]byte{b})
			}
			assert.Equal(t, want, h.Sum16())
		})
	}
}

func TestDeterminism(t *testing.T) {
	a := New(CRC16_IBM_3740)
	b := New(CRC16_IBM_3740)
	for i := 0; i < 16; i++ {
		chunk := []byte{byte(i), byte(i * 7), byte(i * 31)}
		_, _ = a.Write(chunk)
		_, _ = b.Write(chunk)
		assert.Equal(t, a.Sum16(), b.Sum16())
	}
}

// Sum16 is a snapshot read: calling it must not disturb the computation.
func TestSum16IsNonDestructive(t *testing.T) {
	h := New(CRC16_XMODEM)
	_, _ = h.Write([]byte("1234"))

	first := h.Sum16()
	assert.Equal(t, first, h.Sum16())

	_, _ = h.Write([]byte("56789"))
	assert.Equal(t, uint16(0x31c3), h.Sum16())
}

func TestUpdateCompleteSplit(t *testing.T) {
	crc := Update(CRC16_KERMIT.Init, CRC16_KERMIT, catalogueMessage)
	assert.Equal(t, uint16(0x2189), Complete(crc, CRC16_KERMIT))
}

func TestByName(t *testing.T) {
	params, err := ByName(XMODEM)
	require.NoError(t, err)
	assert.Equal(t, CRC16_XMODEM, params)

	// Catalogue aliases resolve to the same parameter sets.
	params, err = ByName(CCITT_FALSE)
	require.NoError(t, err)
	assert.Equal(t, CRC16_IBM_3740, params)

	params, err = ByName(AUG_CCITT)
	require.NoError(t, err)
	assert.Equal(t, CRC16_SPI_FUJITSU, params)

	_, err = ByName("modbus")
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	err := Register("", CRC16_XMODEM)
	assert.Error(t, err)

	// CRC-16/GSM, straight from the catalogue.
	gsm := Params{Poly: 0x1021, Init: 0x0000, XorOut: 0xffff, Check: 0xce3c, Name: "CRC-16/GSM"}
	require.NoError(t, Register("gsm", gsm))

	params, err := ByName("gsm")
	require.NoError(t, err)
	assert.Equal(t, gsm.Check, Checksum(catalogueMessage, params))
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.Contains(t, names, XMODEM)
	assert.Contains(t, names, KERMIT)
	assert.Contains(t, names, IBM_3740)
	assert.Contains(t, names, SPI_FUJITSU)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func BenchmarkChecksum(b *testing.B) {
	buf := make([]byte, 1024)
	for i := range buf {
		buf[i] = byte(i)
	}
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Checksum(buf, CRC16_IBM_3740)
	}
}
