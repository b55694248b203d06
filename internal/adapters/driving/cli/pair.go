package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	pairHeading       string
	pairBody          string
	pairHeadingWeight int
	pairBodyWeight    int
	pairRandom        bool
)

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Show or change the current font pairing",
	Long: `Shows the current heading/body pairing. With flags, updates the
pairing first: families are matched case-insensitively against the
catalogue, and weights snap to what the chosen family carries.`,
	RunE: runPair,
}

func init() {
	pairCmd.Flags().StringVar(&pairHeading, "heading", "", "set the heading family")
	pairCmd.Flags().StringVar(&pairBody, "body", "", "set the body family")
	pairCmd.Flags().IntVar(&pairHeadingWeight, "heading-weight", 0, "set the heading weight")
	pairCmd.Flags().IntVar(&pairBodyWeight, "body-weight", 0, "set the body weight")
	pairCmd.Flags().BoolVar(&pairRandom, "random", false, "pick a random pairing")
	rootCmd.AddCommand(pairCmd)
}

func runPair(cmd *cobra.Command, _ []string) error {
	if catalogueService == nil || pairingService == nil {
		return errors.New("pairing service not configured")
	}

	ctx := context.Background()
	if _, err := ensurePairingReady(ctx); err != nil {
		return err
	}

	changed := false

	if pairRandom {
		pairingService.RandomPair()
		changed = true
	}
	if pairHeading != "" {
		family, err := matchFamily(pairHeading)
		if err != nil {
			return err
		}
		pairingService.SelectHeading(family)
		changed = true
	}
	if pairBody != "" {
		family, err := matchFamily(pairBody)
		if err != nil {
			return err
		}
		pairingService.SelectBody(family)
		changed = true
	}
	if pairHeadingWeight != 0 {
		pairingService.SetHeadingWeight(pairHeadingWeight)
		changed = true
	}
	if pairBodyWeight != 0 {
		pairingService.SetBodyWeight(pairBodyWeight)
		changed = true
	}

	if changed {
		if err := pairingService.Persist(ctx); err != nil {
			return err
		}
	}

	printPairState(cmd)
	return nil
}

// matchFamily resolves a user-typed family name against the catalogue,
// case-insensitively.
func matchFamily(input string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	for _, f := range pairingService.Fonts() {
		if f.FamilyLower == needle {
			return f.Family, nil
		}
	}
	return "", fmt.Errorf("unknown font family: %s", input)
}

func printPairState(cmd *cobra.Command) {
	state := pairingService.Current()

	cmd.Printf("Heading: %s %d\n", state.Heading, state.HeadingWeight)
	cmd.Printf("Body:    %s %d\n", state.Body, state.BodyWeight)
	cmd.Printf("Size %dpx, line height %.2f, measure %dch\n",
		state.BaseSize, state.RenderableLineHeight(), state.ParagraphWidth)
}
