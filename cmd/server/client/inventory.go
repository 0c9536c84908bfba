package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/entities/garden"
)

var placeTarget string

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Merge backpack stacks until no pair remains",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGarden("combine", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.CombineInventory(ctx, &gardenv1alpha1.CombineInventoryRequest{SessionId: sessionID})
			if err != nil {
				return err
			}
			if !resp.Combined {
				fmt.Println("Nothing to combine")
				return nil
			}
			for _, s := range resp.Backpack {
				fmt.Printf("  %-24s x%d\n", s.Name, s.Count)
			}
			return nil
		})
	},
}

var placeCmd = &cobra.Command{
	Use:   "place <seed|tree|fruit> [level|species]",
	Short: "Place one backpack item onto the grid",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, ok := garden.ParseCategory(args[0])
		if !ok {
			return fmt.Errorf("unknown category %q", args[0])
		}

		var (
			level int
			err   error
		)
		switch {
		case category == garden.CategorySeed:
		case len(args) < 2:
			err = fmt.Errorf("%s needs a level or species", category)
		case category == garden.CategoryTree:
			level, err = resolveTreeLevel(args[1])
		default:
			level, err = resolveFruitLevel(args[1])
		}
		if err != nil {
			return err
		}

		req := &gardenv1alpha1.PlaceFromInventoryRequest{
			SessionId: sessionID,
			Category:  string(category),
			Level:     level,
		}
		if placeTarget != "" {
			target, err := parsePos(placeTarget)
			if err != nil {
				return err
			}
			req.Target = &target
		}

		return withGarden("place", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.PlaceFromInventory(ctx, req)
			if err != nil {
				return err
			}
			switch {
			case !resp.Applied:
				fmt.Println("Nothing placed")
			case resp.Upgraded:
				fmt.Printf("Upgraded tree at (%d,%d)\n", resp.Pos.Row, resp.Pos.Col)
			default:
				fmt.Printf("Placed at (%d,%d)\n", resp.Pos.Row, resp.Pos.Col)
			}
			return nil
		})
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell <level|fruit>",
	Short: "Sell every grid fruit of a level for secondary currency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := resolveFruitLevel(args[0])
		if err != nil {
			return err
		}
		return withGarden("sell", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.Sell(ctx, &gardenv1alpha1.SellRequest{SessionId: sessionID, Level: level})
			if err != nil {
				return err
			}
			fmt.Printf("Sold %d fruit for %d, secondary balance %d\n", resp.Count, resp.Amount, resp.Wallet.Secondary)
			return nil
		})
	},
}

func init() {
	placeCmd.Flags().StringVar(&placeTarget, "target", "", "Target cell as row,col (defaults to first empty)")
}
