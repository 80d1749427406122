package crc16

import (
	"sort"
	"sync"

	"github.com/vuuvv/errors"
)

// Params describes one variant of the CRC-16 family, following the notation
// of the reveng CRC catalogue (https://reveng.sourceforge.io/crc-catalogue/).
// A Params value is immutable configuration; engines copy it at construction.
type Params struct {
	// Poly is the generator polynomial with the implicit degree-16
	// coefficient omitted.
	Poly uint16
	// Init seeds the register before any input is processed.
	Init uint16
	// RefIn reverses the bit order of every input byte before it enters the
	// register (LSB-first message convention).
	RefIn bool
	// RefOut reverses the bit order of the final register value.
	RefOut bool
	// XorOut is XORed into the output after the optional reflection.
	XorOut uint16
	// Check is the catalogue checksum of the ASCII bytes "123456789",
	// carried so a parameter set can be verified against its claimed
	// identity. Zero means unattested.
	Check uint16
	// Name is the catalogue name of the variant.
	Name string
}

// Registry keys of the shipped presets.
const (
	XMODEM      = "xmodem"
	KERMIT      = "kermit"
	IBM_3740    = "ibm_3740"
	SPI_FUJITSU = "spi_fujitsu"

	// Catalogue aliases.
	CCITT_FALSE = "ccitt_false" // CRC-16/IBM-3740
	AUG_CCITT   = "aug_ccitt"   // CRC-16/SPI-FUJITSU
)

// CRC-16/XMODEM, the MSB-first form of the V.41 algorithm.
// Alias: CRC-16/ACORN, CRC-16/LTE, CRC-16/V-41-MSB, ZMODEM.
var CRC16_XMODEM = Params{Poly: 0x1021, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000, Check: 0x31c3, Name: "CRC-16/XMODEM"}

// CRC-16/KERMIT, the LSB-first form of the V.41 algorithm, commonly called
// CRC-CCITT. Alias: CRC-16/BLUETOOTH, CRC-16/CCITT-TRUE, CRC-16/V-41-LSB.
var CRC16_KERMIT = Params{Poly: 0x1021, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000, Check: 0x2189, Name: "CRC-16/KERMIT"}

// CRC-16/IBM-3740, commonly misidentified as CRC-CCITT.
// Alias: CRC-16/AUTOSAR, CRC-16/CCITT-FALSE.
var CRC16_IBM_3740 = Params{Poly: 0x1021, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0x0000, Check: 0x29b1, Name: "CRC-16/IBM-3740"}

// CRC-16/SPI-FUJITSU. The init value is equivalent to an augment of 0xFFFF
// prepended to the message. Alias: CRC-16/AUG-CCITT.
var CRC16_SPI_FUJITSU = Params{Poly: 0x1021, Init: 0x1d0f, RefIn: false, RefOut: false, XorOut: 0x0000, Check: 0xe5cc, Name: "CRC-16/SPI-FUJITSU"}

var (
	registryMu sync.RWMutex
	registry   = map[string]Params{
		XMODEM:      CRC16_XMODEM,
		KERMIT:      CRC16_KERMIT,
		IBM_3740:    CRC16_IBM_3740,
		SPI_FUJITSU: CRC16_SPI_FUJITSU,
		CCITT_FALSE: CRC16_IBM_3740,
		AUG_CCITT:   CRC16_SPI_FUJITSU,
	}
)

// ByName returns the registered parameter set for the given key.
func ByName(name string) (Params, error) {
	registryMu.RLock()
	params, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return Params{}, errors.Errorf("crc16: unknown variant '%s'", name)
	}
	return params, nil
}

// Register makes a parameter set available to ByName under the given key.
// Registering an already-used key replaces the previous entry.
func Register(name string, params Params) error {
	if name == "" {
		return errors.New("crc16: variant name is empty")
	}
	registryMu.Lock()
	registry[name] = params
	registryMu.Unlock()
	return nil
}

// Names returns the registered variant keys in sorted order.
func Names() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()
	sort.Strings(names)
	return names
}
