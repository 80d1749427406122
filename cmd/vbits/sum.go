package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vuuvv/errors"
	"github.com/vuuvv/vbits/crc16"
	"github.com/vuuvv/vbits/log"
	"github.com/vuuvv/vbits/utils"
	"go.uber.org/zap"
)

var (
	presetName     string
	descriptorPath string
	variantName    string
	literalValue   string
)

var sumCmd = &cobra.Command{
	Use:   "sum [files...]",
	Short: "Compute a CRC-16 checksum",
	Long: `Compute a CRC-16 checksum over the given files, stdin, or an inline
typed literal (--value x'1021', d'123', s'text', ...).

The variant comes from --preset (see 'vbits presets'), or from a YAML
descriptor file via --descriptor and --variant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := resolveParams()
		if err != nil {
			return err
		}

		h := crc16.New(params)

		switch {
		case literalValue != "":
			data, err := utils.ParseTypedValue(literalValue)
			if err != nil {
				return err
			}
			_, _ = h.Write(data)
			log.Debug("summed literal", zap.Int("bytes", len(data)))

		case len(args) == 0:
			n, err := io.Copy(h, os.Stdin)
			if err != nil {
				return errors.WithStack(err)
			}
			log.Debug("summed stdin", zap.Int64("bytes", n))

		default:
			for _, path := range args {
				if err := sumFile(h, path); err != nil {
					return err
				}
			}
		}

		fmt.Printf("0x%04X\n", h.Sum16())
		return nil
	},
}

func sumFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return errors.WithStack(err)
	}
	log.Debug("summed file", zap.String("path", path), zap.Int64("bytes", n))
	return nil
}

func resolveParams() (crc16.Params, error) {
	if descriptorPath != "" {
		if variantName == "" {
			return crc16.Params{}, errors.New("--descriptor requires --variant")
		}
		descriptor, err := crc16.LoadDescriptorFile(descriptorPath)
		if err != nil {
			return crc16.Params{}, err
		}
		return descriptor.Find(variantName)
	}
	return crc16.ByName(presetName)
}

func init() {
	sumCmd.Flags().StringVarP(&presetName, "preset", "p", crc16.XMODEM, "Preset variant name")
	sumCmd.Flags().StringVarP(&descriptorPath, "descriptor", "d", "", "YAML variant descriptor file")
	sumCmd.Flags().StringVar(&variantName, "variant", "", "Variant name within the descriptor")
	sumCmd.Flags().StringVar(&literalValue, "value", "", "Inline typed literal to sum instead of files/stdin")

	rootCmd.AddCommand(sumCmd)
}
