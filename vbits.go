// Package vbits re-exports the module's bit-manipulation primitives: bit and
// byte order reversal, the parameterized CRC-16 engine with its catalogue
// presets, and YAML-driven variant descriptors.
package vbits

import (
	"github.com/vuuvv/vbits/bitswap"
	"github.com/vuuvv/vbits/crc16"
	"github.com/vuuvv/vbits/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Crc16Params = crc16.Params
type Hash16 = crc16.Hash16

var NewCrc16 = crc16.New
var NewCrc16ByName = crc16.NewByName
var Crc16Checksum = crc16.Checksum
var Crc16ByName = crc16.ByName
var Crc16Names = crc16.Names

var Crc16Xmodem = crc16.CRC16_XMODEM
var Crc16Kermit = crc16.CRC16_KERMIT
var Crc16Ibm3740 = crc16.CRC16_IBM_3740
var Crc16SpiFujitsu = crc16.CRC16_SPI_FUJITSU

type Crc16Descriptor = crc16.Descriptor

var LoadCrc16Descriptor = crc16.LoadDescriptor
var LoadCrc16DescriptorFile = crc16.LoadDescriptorFile

var Reflect8 = bitswap.Reflect8
var Reflect16 = bitswap.Reflect16
var Reflect32 = bitswap.Reflect32
var Reflect64 = bitswap.Reflect64

var ByteSwap16 = bitswap.ByteSwap16
var ByteSwap32 = bitswap.ByteSwap32
var ByteSwap64 = bitswap.ByteSwap64

// Setup installs a development logger unless the caller already replaced the
// zap globals.
func Setup() {
	var logger *zap.Logger
	var err error
	if !zap.L().Core().Enabled(zapcore.PanicLevel) {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	} else {
		logger = zap.L()
	}
	log.SetLogger(logger)
}
