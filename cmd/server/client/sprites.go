package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/entities/garden"
)

var (
	spriteAt   string
	spriteFrom string
	spriteTo   string
)

var spriteCmd = &cobra.Command{
	Use:   "sprite",
	Short: "Add, move and remove sprites on the field",
}

var spriteAddCmd = &cobra.Command{
	Use:   "add <category> <level>",
	Short: "Add a sprite, merging into an equal neighbor",
	Long:  fmt.Sprintf("Add a sprite of one of: %s.", strings.Join(garden.SpriteCategoryNames(), ", ")),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid level %q", args[1])
		}
		req := &gardenv1alpha1.GenerateSpriteRequest{
			SessionId: sessionID,
			Category:  args[0],
			Level:     level,
		}
		if spriteAt != "" {
			p, err := parsePoint(spriteAt)
			if err != nil {
				return err
			}
			req.Point = &p
		}
		return withGarden("generate sprite", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.GenerateSprite(ctx, req)
			if err != nil {
				return err
			}
			sp := resp.Sprite
			fmt.Printf("Sprite %s is %s L%d at (%.0f,%.0f)\n", sp.Id, sp.Category, sp.Level, sp.Point.X, sp.Point.Y)
			return nil
		})
	},
}

var spriteMoveCmd = &cobra.Command{
	Use:   "move",
	Short: "Drag the sprite at --from to --to",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parsePoint(spriteFrom)
		if err != nil {
			return err
		}
		to, err := parsePoint(spriteTo)
		if err != nil {
			return err
		}
		return withGarden("move sprite", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.DragDrop(ctx, &gardenv1alpha1.DragDropRequest{
				SessionId: sessionID,
				Source:    gardenv1alpha1.DragSource{Zone: "field", Point: from},
				Target:    &gardenv1alpha1.DragTarget{Zone: "field", Point: to},
			})
			if err != nil {
				return err
			}
			fmt.Printf("Result: %s\n", resp.Result)
			return nil
		})
	},
}

var spriteRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the sprite under --at",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parsePoint(spriteAt)
		if err != nil {
			return err
		}
		return withGarden("remove sprite", func(ctx context.Context, client gardenv1alpha1.GardenServiceClient) error {
			resp, err := client.RemoveSprite(ctx, &gardenv1alpha1.RemoveSpriteRequest{SessionId: sessionID, Point: at})
			if err != nil {
				return err
			}
			if !resp.Applied || resp.Sprite == nil {
				fmt.Println("No sprite there")
				return nil
			}
			fmt.Printf("Removed %s\n", resp.Sprite.Id)
			return nil
		})
	},
}

func init() {
	spriteAddCmd.Flags().StringVar(&spriteAt, "at", "", "Field point as x,y (defaults to a random free spot)")
	spriteRemoveCmd.Flags().StringVar(&spriteAt, "at", "", "Field point as x,y (required)")
	_ = spriteRemoveCmd.MarkFlagRequired("at") // nolint:errcheck // flag is defined above
	spriteMoveCmd.Flags().StringVar(&spriteFrom, "from", "", "Sprite point as x,y (required)")
	spriteMoveCmd.Flags().StringVar(&spriteTo, "to", "", "Drop point as x,y (required)")
	_ = spriteMoveCmd.MarkFlagRequired("from") // nolint:errcheck // flag is defined above
	_ = spriteMoveCmd.MarkFlagRequired("to")   // nolint:errcheck // flag is defined above

	spriteCmd.AddCommand(spriteAddCmd)
	spriteCmd.AddCommand(spriteMoveCmd)
	spriteCmd.AddCommand(spriteRemoveCmd)
}
