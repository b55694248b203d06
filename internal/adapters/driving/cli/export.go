package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	exportCopy bool
	exportHref bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current pairing as CSS",
	Long: `Renders a ready-to-paste snippet for the current pairing: the Google
Fonts stylesheet link, a :root variables block and base rules. The
stylesheet link requests each family's selected weight plus the regular
and bold cuts when available.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "copy to the clipboard instead of printing")
	exportCmd.Flags().BoolVar(&exportHref, "href", false, "print only the stylesheet URL")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if catalogueService == nil || pairingService == nil {
		return errors.New("pairing service not configured")
	}

	ctx := context.Background()
	if _, err := ensurePairingReady(ctx); err != nil {
		return err
	}

	var output string
	if exportHref {
		output = pairingService.GoogleCSSHref()
	} else {
		output = pairingService.ExportCSS()
	}

	if exportCopy {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		cmd.Println("Copied to clipboard.")
		return nil
	}

	cmd.Println(output)
	return nil
}
