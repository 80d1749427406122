package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vuuvv/vbits/crc16"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the registered CRC-16 variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-14s %-6s %-6s %-5s %-6s %-6s %-6s %s\n",
			"KEY", "POLY", "INIT", "REFIN", "REFOUT", "XOROUT", "CHECK", "NAME")
		for _, key := range crc16.Names() {
			params, err := crc16.ByName(key)
			if err != nil {
				return err
			}
			fmt.Printf("%-14s 0x%04x 0x%04x %-5t %-6t 0x%04x 0x%04x %s\n",
				key, params.Poly, params.Init, params.RefIn, params.RefOut,
				params.XorOut, params.Check, params.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
