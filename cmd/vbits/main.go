package main

import (
	"fmt"
	"os"

	"github.com/vuuvv/vbits"
)

func main() {
	vbits.Setup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
