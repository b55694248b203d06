package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var favouritesCmd = &cobra.Command{
	Use:     "favourites",
	Aliases: []string{"fav"},
	Short:   "Manage saved pairings",
}

var favouritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved pairings, newest first",
	RunE:  runFavouritesList,
}

var favouritesSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current pairing",
	RunE:  runFavouritesSave,
}

var favouritesApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Apply a saved pairing",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavouritesApply,
}

var favouritesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved pairing",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavouritesDelete,
}

func init() {
	favouritesCmd.AddCommand(favouritesListCmd)
	favouritesCmd.AddCommand(favouritesSaveCmd)
	favouritesCmd.AddCommand(favouritesApplyCmd)
	favouritesCmd.AddCommand(favouritesDeleteCmd)
	rootCmd.AddCommand(favouritesCmd)
}

func runFavouritesList(cmd *cobra.Command, _ []string) error {
	if favouriteService == nil {
		return errors.New("favourite service not configured")
	}

	favs, err := favouriteService.List(context.Background())
	if err != nil {
		return err
	}

	if len(favs) == 0 {
		cmd.Println("No favourites saved.")
		return nil
	}

	for i := range favs {
		fav := &favs[i]
		cmd.Printf("%s  %s (%d/%d)  %s\n",
			fav.ID, fav.Label(),
			fav.State.HeadingWeight, fav.State.BodyWeight,
			fav.CreatedAt.Local().Format(time.RFC3339))
	}
	return nil
}

func runFavouritesSave(cmd *cobra.Command, _ []string) error {
	if favouriteService == nil || pairingService == nil {
		return errors.New("favourite service not configured")
	}

	ctx := context.Background()
	if _, err := ensurePairingReady(ctx); err != nil {
		return err
	}

	fav, err := favouriteService.Save(ctx, pairingService.Current())
	if err != nil {
		return err
	}

	cmd.Printf("Saved %s as %s\n", fav.Label(), fav.ID)
	return nil
}

func runFavouritesApply(cmd *cobra.Command, args []string) error {
	if favouriteService == nil || pairingService == nil {
		return errors.New("favourite service not configured")
	}

	ctx := context.Background()
	if _, err := ensurePairingReady(ctx); err != nil {
		return err
	}

	fav, err := favouriteService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("get favourite: %w", err)
	}

	pairingService.Apply(fav.State)
	if err := pairingService.Persist(ctx); err != nil {
		return err
	}

	cmd.Printf("Applied %s\n", fav.Label())
	printPairState(cmd)
	return nil
}

func runFavouritesDelete(cmd *cobra.Command, args []string) error {
	if favouriteService == nil {
		return errors.New("favourite service not configured")
	}

	if err := favouriteService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}

	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
