package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vuuvv/errors"
	"github.com/vuuvv/vbits/bitswap"
)

var reflectWidth int

var reflectCmd = &cobra.Command{
	Use:   "reflect <value>",
	Short: "Reverse the bit order of a fixed-width value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return errors.Errorf("invalid value '%s': %v", args[0], err)
		}

		switch reflectWidth {
		case 8:
			if v > 0xff {
				return errors.Errorf("value 0x%x exceeds 8 bits", v)
			}
			fmt.Printf("0x%02X\n", bitswap.Reflect8(uint8(v)))
		case 16:
			if v > 0xffff {
				return errors.Errorf("value 0x%x exceeds 16 bits", v)
			}
			fmt.Printf("0x%04X\n", bitswap.Reflect16(uint16(v)))
		case 32:
			if v > 0xffffffff {
				return errors.Errorf("value 0x%x exceeds 32 bits", v)
			}
			fmt.Printf("0x%08X\n", bitswap.Reflect32(uint32(v)))
		case 64:
			fmt.Printf("0x%016X\n", bitswap.Reflect64(v))
		default:
			return errors.Errorf("unsupported width %d: expected 8, 16, 32 or 64", reflectWidth)
		}
		return nil
	},
}

func init() {
	reflectCmd.Flags().IntVarP(&reflectWidth, "width", "w", 16, "Bit width of the value (8, 16, 32 or 64)")

	rootCmd.AddCommand(reflectCmd)
}
