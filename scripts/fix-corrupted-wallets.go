package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/redis"
	"github.com/KirkDiggler/garden-api/internal/repositories/ledger"
)

func main() {
	prefix := flag.String("prefix", ledger.DefaultKeyPrefix, "wallet key prefix")
	flag.Parse()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redis.NewClientFromURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	ctx := context.Background()

	if err := redis.Ping(ctx, client, 5*time.Second); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted wallets...")

	keys, err := redis.ScanKeys(ctx, client, *prefix+":*")
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	var corruptedKeys []string
	for _, key := range keys {
		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := checkWallet(data); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted wallets\n", len(keys), len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these wallets? Players restart at zero. (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// checkWallet returns why data is not a valid wallet, or "" when it is
func checkWallet(data []byte) string {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w garden.Wallet
	if err := dec.Decode(&w); err != nil {
		return fmt.Sprintf("not a wallet: %v", err)
	}
	if w.Primary < 0 || w.Secondary < 0 || w.Premium < 0 {
		return fmt.Sprintf("negative balance %+v", w)
	}
	return ""
}
