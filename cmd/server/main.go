// Package main is the entry point for the garden gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/garden-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "garden-api",
	Short: "Garden API gRPC Server",
	Long:  `Garden API hosts merge-and-grow garden sessions over gRPC: grid placement, tree growth, sprites and the currency ledger.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
