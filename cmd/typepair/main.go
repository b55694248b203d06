// Command typepair pairs a heading font with a body font from the
// Google Fonts catalogue, with offline fallbacks, CSS export and an
// interactive terminal interface.
package main

import (
	"os"

	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
