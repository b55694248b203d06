package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
)

var catalogueJSON bool

var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "Inspect and refresh the font catalogue",
}

var catalogueStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the cached catalogue's source, size and freshness",
	RunE:  runCatalogueStatus,
}

var catalogueRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the catalogue from the best available source",
	Long: `Walks the source chain (Google metadata, mirrors, local fallback,
embedded list) and caches the best result. A cached catalogue of higher
quality is never overwritten by a lower tier.`,
	RunE: runCatalogueRefresh,
}

func init() {
	catalogueStatusCmd.Flags().BoolVar(&catalogueJSON, "json", false, "output as JSON")
	catalogueCmd.AddCommand(catalogueStatusCmd)
	catalogueCmd.AddCommand(catalogueRefreshCmd)
	rootCmd.AddCommand(catalogueCmd)
}

// catalogueStatus is the machine-readable status shape.
type catalogueStatus struct {
	SourceLabel string    `json:"sourceLabel"`
	Quality     string    `json:"quality"`
	Families    int       `json:"families"`
	Signature   string    `json:"signature"`
	SourceStamp string    `json:"sourceStamp"`
	FetchedAt   time.Time `json:"fetchedAt"`
	Fresh       bool      `json:"fresh"`
}

func runCatalogueStatus(cmd *cobra.Command, _ []string) error {
	if catalogueService == nil {
		return errors.New("catalogue service not configured")
	}

	cached, err := catalogueService.Cached(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("No cached catalogue. Run 'typepair catalogue refresh'.")
			return nil
		}
		return fmt.Errorf("read catalogue cache: %w", err)
	}

	status := catalogueStatus{
		SourceLabel: cached.SourceLabel,
		Quality:     cached.Quality.String(),
		Families:    len(cached.Fonts),
		Signature:   cached.Signature,
		SourceStamp: cached.SourceStamp,
		FetchedAt:   cached.FetchedAt,
		Fresh:       cached.Fresh(time.Now()),
	}

	if catalogueJSON {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal status: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Source:    %s (%s)\n", status.SourceLabel, status.Quality)
	cmd.Printf("Families:  %d\n", status.Families)
	cmd.Printf("Signature: %s\n", status.Signature)
	cmd.Printf("Fetched:   %s\n", status.FetchedAt.Format(time.RFC3339))
	if status.Fresh {
		cmd.Println("Freshness: fresh")
	} else {
		cmd.Println("Freshness: stale (older than 7 days)")
	}
	return nil
}

func runCatalogueRefresh(cmd *cobra.Command, _ []string) error {
	if catalogueService == nil {
		return errors.New("catalogue service not configured")
	}

	res, err := catalogueService.Resolve(context.Background(), func(p *driving.Resolution) {
		cmd.Println(p.Status)
	})
	if err != nil {
		return fmt.Errorf("refresh catalogue: %w", err)
	}

	cmd.Println(res.Status)
	return nil
}
