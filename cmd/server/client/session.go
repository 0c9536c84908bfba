package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/export"
)

var (
	playerID   string
	exportPath string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start or resume a garden session",
	RunE:  runStart,
}

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End a garden session",
	RunE:  runEnd,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show the grid, backpack, sprites and wallet",
	RunE:  runSnapshot,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a session snapshot as CSV",
	RunE:  runExport,
}

func init() {
	startCmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	_ = startCmd.MarkFlagRequired("player") // nolint:errcheck // flag is defined above
	exportCmd.Flags().StringVar(&exportPath, "out", "", "Output file (defaults to stdout)")
}

func runStart(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createGardenClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.StartSession(ctx, &gardenv1alpha1.StartSessionRequest{PlayerId: playerID})
	if err != nil {
		return describe("start session", err)
	}

	if resp.Resumed {
		fmt.Printf("Resumed session %s\n\n", resp.Snapshot.SessionId)
	} else {
		fmt.Printf("Started session %s\n\n", resp.Snapshot.SessionId)
	}
	printSnapshot(resp.Snapshot)
	return nil
}

func runEnd(cmd *cobra.Command, args []string) error {
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

	if _, err := client.EndSession(ctx, &gardenv1alpha1.EndSessionRequest{SessionId: sessionID}); err != nil {
		return describe("end session", err)
	}
	fmt.Printf("Ended session %s\n", sessionID)
	return nil
}

func fetchSnapshot() (*gardenv1alpha1.Snapshot, error) {
	if err := requireSession(); err != nil {
		return nil, err
	}
	client, cleanup, err := createGardenClient()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetSnapshot(ctx, &gardenv1alpha1.GetSnapshotRequest{SessionId: sessionID})
	if err != nil {
		return nil, describe("get snapshot", err)
	}
	return resp.Snapshot, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	snap, err := fetchSnapshot()
	if err != nil {
		return err
	}
	printSnapshot(snap)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	snap, err := fetchSnapshot()
	if err != nil {
		return err
	}

	if exportPath == "" {
		return export.WriteCSV(os.Stdout, snap)
	}

	f, err := os.Create(exportPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportPath, err)
	}
	if err := export.WriteCSV(f, snap); err != nil {
		_ = f.Close() // nolint:errcheck // write error takes precedence
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Exported session %s to %s\n", snap.SessionId, exportPath)
	return nil
}

// printSnapshot renders the grid as text rows followed by the backpack
func printSnapshot(snap *gardenv1alpha1.Snapshot) {
	if snap == nil {
		return
	}

	cells := make(map[gardenv1alpha1.Pos]gardenv1alpha1.Cell, len(snap.Cells))
	for _, c := range snap.Cells {
		cells[c.Pos] = c
	}

	for row := 0; row < snap.Height; row++ {
		var line strings.Builder
		for col := 0; col < snap.Width; col++ {
			line.WriteString(cellGlyph(cells[gardenv1alpha1.Pos{Row: row, Col: col}]))
		}
		fmt.Println(line.String())
	}

	fmt.Printf("\nWallet: primary=%d secondary=%d premium=%d\n",
		snap.Wallet.Primary, snap.Wallet.Secondary, snap.Wallet.Premium)

	if len(snap.Backpack) > 0 {
		fmt.Println("Backpack:")
		for _, s := range snap.Backpack {
			fmt.Printf("  %-24s x%d\n", s.Name, s.Count)
		}
	}

	for _, c := range snap.Cells {
		if c.Tree == nil {
			continue
		}
		status := "ready"
		if c.Tree.Growing {
			status = c.Tree.Remaining
		}
		fmt.Printf("  (%d,%d) %s %d/%d fruit %s\n",
			c.Pos.Row, c.Pos.Col, c.Name, c.Tree.CurrentFruits, c.Tree.MaxFruits, status)
	}

	if len(snap.Sprites) > 0 {
		fmt.Println("Sprites:")
		for _, sp := range snap.Sprites {
			fmt.Printf("  %s %s L%d at (%.0f,%.0f)\n", sp.Id, sp.Category, sp.Level, sp.Point.X, sp.Point.Y)
		}
	}
}

func cellGlyph(c gardenv1alpha1.Cell) string {
	switch c.Kind {
	case "seed":
		return fmt.Sprintf(" s%-2d", c.Level)
	case "tree":
		return fmt.Sprintf(" T%-2d", c.Level)
	case "fruit":
		return fmt.Sprintf(" f%-2d", c.Level)
	default:
		return "  . "
	}
}
