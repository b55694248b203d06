package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/messages"
	"github.com/typepair-labs/typepair-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive pairing interface",
	Long: `Launch the interactive terminal interface for typepair.

Two searchable pickers choose the heading and body fonts from the full
catalogue; the preview pane shows the resulting CSS settings.

Controls:
  h / b    - Pick heading / body font
  (type)   - Filter families in an open picker
  ↑/↓      - Navigate, Enter - select, Esc - close
  [ ] { }  - Step weights
  r        - Random pair, s - save favourite, f - favourites
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps a stack trace visible after the alt screen
	// is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if catalogueService == nil || pairingService == nil || favouriteService == nil {
		return errors.New("services not configured")
	}

	ports := tui.NewPorts(catalogueService, pairingService, favouriteService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// A rewrite of the local fallback file triggers a fresh resolve
	// cycle inside the running session.
	if localSource != nil {
		err := localSource.Watch(ctx, func() {
			p.Send(messages.LocalFallbackChanged{})
		})
		if err != nil {
			logger.Warn("local fallback watch unavailable: %v", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
