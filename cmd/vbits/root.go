package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vbits",
	Short: "Low-level bit manipulation toolbox",
	Long: `vbits - bit-order reversal and parameterized CRC-16 checksums.

The sum command computes any CRC-16 variant from the public catalogue over
files, stdin, or an inline typed literal, selected by preset name or loaded
from a YAML descriptor. The reflect command reverses the bit order of a
fixed-width value.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}
