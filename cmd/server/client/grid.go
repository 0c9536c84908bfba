package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
)

var (
	cellPos string
	fromPos string
	toPos   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Plant a level 0 seed on the first empty cell",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGarden("generate seed", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.GenerateSeed(ctx, &gardenv1alpha1.GenerateSeedRequest{SessionId: sessionID})
			if err != nil {
				return err
			}
			if !resp.Applied {
				fmt.Println("Grid is full")
				return nil
			}
			fmt.Printf("Planted seed at (%d,%d)\n", resp.Pos.Row, resp.Pos.Col)
			return nil
		})
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree <level|species>",
	Short: "Place a tree of the given level or species",
	Long:  `Place a tree on the first empty cell. Species names are matched loosely, so "aple" finds the apple tree.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := resolveTreeLevel(args[0])
		if err != nil {
			return err
		}
		return withGarden("generate tree", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.GenerateTree(ctx, &gardenv1alpha1.GenerateTreeRequest{SessionId: sessionID, Level: level})
			if err != nil {
				return err
			}
			if !resp.Applied {
				fmt.Println("Grid is full")
				return nil
			}
			fmt.Printf("Placed level %d tree at (%d,%d)\n", level, resp.Pos.Row, resp.Pos.Col)
			return nil
		})
	},
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick one fruit from the tree at --pos",
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePos(cellPos)
		if err != nil {
			return err
		}
		return withGarden("pick fruit", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.PickFruit(ctx, &gardenv1alpha1.PickFruitRequest{SessionId: sessionID, Pos: pos})
			if err != nil {
				return err
			}
			if !resp.Applied {
				fmt.Println("Nothing picked")
				return nil
			}
			fmt.Printf("Picked level %d fruit onto (%d,%d)\n", resp.FruitLevel, resp.FruitPos.Row, resp.FruitPos.Col)
			return nil
		})
	},
}

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Move the item at --pos into the backpack",
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePos(cellPos)
		if err != nil {
			return err
		}
		return withGarden("harvest", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.HarvestTree(ctx, &gardenv1alpha1.HarvestTreeRequest{SessionId: sessionID, Pos: pos})
			if err != nil {
				return err
			}
			if !resp.Applied {
				fmt.Println("Nothing to harvest")
				return nil
			}
			fmt.Printf("Backpack now holds %d of %s\n", resp.Count, resp.Key)
			return nil
		})
	},
}

var harvestAllCmd = &cobra.Command{
	Use:   "harvest-all",
	Short: "Move every seed and fruit on the grid into the backpack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGarden("harvest all", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.HarvestAll(ctx, &gardenv1alpha1.HarvestAllRequest{SessionId: sessionID})
			if err != nil {
				return err
			}
			fmt.Printf("Harvested %d seeds and %d fruits\n", resp.Seeds, resp.Fruits)
			return nil
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Drag the item at --from onto --to, merging equal items",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parsePos(fromPos)
		if err != nil {
			return err
		}
		to, err := parsePos(toPos)
		if err != nil {
			return err
		}
		return withGarden("move", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.DragDrop(ctx, &gardenv1alpha1.DragDropRequest{
				SessionId: sessionID,
				Source:    gardenv1alpha1.DragSource{Zone: "grid", Pos: from},
				Target:    &gardenv1alpha1.DragTarget{Zone: "grid", Pos: to},
			})
			if err != nil {
				return err
			}
			fmt.Printf("Result: %s\n", resp.Result)
			return nil
		})
	},
}

var speedUpCmd = &cobra.Command{
	Use:   "speed-up",
	Short: "Pay to finish growing the tree at --pos",
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePos(cellPos)
		if err != nil {
			return err
		}
		return withGarden("speed up", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.SpeedUp(ctx, &gardenv1alpha1.SpeedUpRequest{SessionId: sessionID, Pos: pos})
			if err != nil {
				return err
			}
			if !resp.Applied {
				fmt.Println("Tree is not growing")
				return nil
			}
			fmt.Printf("Paid %d primary, %d left\n", resp.Cost, resp.Wallet.Primary)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{pickCmd, harvestCmd, speedUpCmd} {
		c.Flags().StringVar(&cellPos, "pos", "", "Cell as row,col (required)")
		_ = c.MarkFlagRequired("pos") // nolint:errcheck // flag is defined above
	}
	moveCmd.Flags().StringVar(&fromPos, "from", "", "Source cell as row,col (required)")
	moveCmd.Flags().StringVar(&toPos, "to", "", "Target cell as row,col (required)")
	_ = moveCmd.MarkFlagRequired("from") // nolint:errcheck // flag is defined above
	_ = moveCmd.MarkFlagRequired("to")   // nolint:errcheck // flag is defined above
}

// withGarden runs fn against a fresh connection scoped to the session
func withGarden(action string, fn func(context.Context, gardenv1alpha1.GardenServiceClient) error) error {
	if err := requireSession(); err != nil {
		return err
	}
	client, cleanup, err := createGardenClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := fn(ctx, client); err != nil {
		return describe(action, err)
	}
	return nil
}
