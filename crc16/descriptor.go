package crc16

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/vuuvv/errors"
	"gopkg.in/yaml.v3"
)

// Descriptor is a data-driven set of CRC-16 variants, loaded from YAML. It
// lets a deployment add catalogue variants without recompiling:
//
//	variants:
//	  - name: xmodem
//	    poly: 0x1021
//	    init: 0x0000
//	    reflect_in: false
//	    reflect_out: false
//	    xor_out: 0x0000
//	    check: 0x31c3
//
// Numeric fields accept decimal, 0x-prefixed hex, or quoted forms of either.
type Descriptor struct {
	Variants []*Variant `yaml:"variants"`
}

// Variant is one descriptor entry. The parsed parameter set is available
// through Params after Setup has run.
type Variant struct {
	Name       string `yaml:"name"`
	Poly       any    `yaml:"poly"`
	Init       any    `yaml:"init"`
	ReflectIn  bool   `yaml:"reflect_in"`
	ReflectOut bool   `yaml:"reflect_out"`
	XorOut     any    `yaml:"xor_out"`
	Check      any    `yaml:"check"`

	params Params
}

// checkMessage is the catalogue's standard test message.
var checkMessage = []byte("123456789")

// Setup parses and validates the entry. When a check value is supplied, the
// parameter set is verified by computing the checksum of "123456789" and
// comparing it against the claimed value, so a descriptor cannot register a
// parameter set under a catalogue identity it does not match.
func (this *Variant) Setup() error {
	if this.Name == "" {
		return errors.New("crc16: descriptor variant without a name")
	}

	poly, err := scalar16("poly", this.Poly)
	if err != nil {
		return errors.WithStack(err)
	}
	initial, err := scalar16("init", this.Init)
	if err != nil {
		return errors.WithStack(err)
	}
	xorOut, err := scalar16("xor_out", this.XorOut)
	if err != nil {
		return errors.WithStack(err)
	}

	this.params = Params{
		Poly:   poly,
		Init:   initial,
		RefIn:  this.ReflectIn,
		RefOut: this.ReflectOut,
		XorOut: xorOut,
		Name:   this.Name,
	}

	if this.Check != nil {
		check, err := scalar16("check", this.Check)
		if err != nil {
			return errors.WithStack(err)
		}
		if got := Checksum(checkMessage, this.params); got != check {
			return errors.Errorf("crc16: variant '%s' check mismatch: declared 0x%04x, computed 0x%04x", this.Name, check, got)
		}
		this.params.Check = check
	}

	return nil
}

// Params returns the parsed parameter set. Valid only after Setup.
func (this *Variant) Params() Params {
	return this.params
}

// Setup parses and validates every variant of the descriptor.
func (this *Descriptor) Setup() error {
	if len(this.Variants) == 0 {
		return errors.New("crc16: descriptor has no variants")
	}
	for _, variant := range this.Variants {
		if err := variant.Setup(); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// Find returns the parameter set of the named variant.
func (this *Descriptor) Find(name string) (Params, error) {
	for _, variant := range this.Variants {
		if variant.Name == name {
			return variant.params, nil
		}
	}
	return Params{}, errors.Errorf("crc16: descriptor has no variant '%s'", name)
}

// Register adds every variant to the package registry, keyed by its name.
func (this *Descriptor) Register() error {
	for _, variant := range this.Variants {
		if err := Register(variant.Name, variant.params); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// LoadDescriptor parses and validates a YAML descriptor.
func LoadDescriptor(data []byte) (*Descriptor, error) {
	descriptor := &Descriptor{}
	if err := yaml.Unmarshal(data, descriptor); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := descriptor.Setup(); err != nil {
		return nil, errors.WithStack(err)
	}
	return descriptor, nil
}

// LoadDescriptorFile reads, parses and validates a YAML descriptor file.
func LoadDescriptorFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return LoadDescriptor(data)
}

// scalar16 coerces a YAML scalar into a 16-bit value. YAML already hands
// plain decimals over as integers; hex values usually arrive as strings.
func scalar16(field string, value any) (uint16, error) {
	if value == nil {
		return 0, errors.Errorf("crc16: descriptor field '%s' is missing", field)
	}

	var u uint64
	switch v := value.(type) {
	case string:
		parsed, err := strconv.ParseUint(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return 0, errors.Errorf("crc16: descriptor field '%s': invalid number '%s'", field, v)
		}
		u = parsed
	default:
		parsed, err := cast.ToUint64E(value)
		if err != nil {
			return 0, errors.Errorf("crc16: descriptor field '%s': invalid number '%v'", field, value)
		}
		u = parsed
	}

	if u > 0xffff {
		return 0, errors.Errorf("crc16: descriptor field '%s': value 0x%x exceeds 16 bits", field, u)
	}
	return uint16(u), nil
}
