// Package client provides commands that drive the Garden API over gRPC
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// sessionID is shared by every command that acts on a running session
	sessionID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the Garden API",
	Long:  `Client commands play a garden session by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&sessionID, "session", "", "Session ID returned by start")

	// Session lifecycle
	ClientCmd.AddCommand(startCmd)
	ClientCmd.AddCommand(endCmd)
	ClientCmd.AddCommand(snapshotCmd)
	ClientCmd.AddCommand(exportCmd)

	// Grid
	ClientCmd.AddCommand(seedCmd)
	ClientCmd.AddCommand(treeCmd)
	ClientCmd.AddCommand(pickCmd)
	ClientCmd.AddCommand(harvestCmd)
	ClientCmd.AddCommand(harvestAllCmd)
	ClientCmd.AddCommand(moveCmd)
	ClientCmd.AddCommand(speedUpCmd)

	// Backpack and economy
	ClientCmd.AddCommand(combineCmd)
	ClientCmd.AddCommand(placeCmd)
	ClientCmd.AddCommand(sellCmd)

	// Sprites
	ClientCmd.AddCommand(spriteCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createGardenClient creates a garden service client
func createGardenClient() (gardenv1alpha1.GardenServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := gardenv1alpha1.NewGardenServiceClient(conn)
	return client, cleanup, nil
}

func requireSession() error {
	if sessionID == "" {
		return fmt.Errorf("--session is required (run 'client start' first)")
	}
	return nil
}

// describe turns a gRPC status back into the server's error with its metadata
func describe(action string, err error) error {
	var appErr *errors.Error
	if !errors.As(errors.FromGRPCError(err), &appErr) {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	if len(appErr.Meta) == 0 {
		return fmt.Errorf("failed to %s: %s: %s", action, appErr.Code, appErr.Message)
	}
	return fmt.Errorf("failed to %s: %s: %s %v", action, appErr.Code, appErr.Message, appErr.Meta)
}
