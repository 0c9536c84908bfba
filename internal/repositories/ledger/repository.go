// Package ledger persists player wallets
package ledger

import (
	"context"
	"regexp"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=ledgermock github.com/KirkDiggler/garden-api/internal/repositories/ledger Repository

// DefaultKeyPrefix namespaces wallet keys
const DefaultKeyPrefix = "moyu_currency"

// Repository stores one wallet per player
type Repository interface {
	// Get returns NotFound when the player has never saved a wallet
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput identifies the wallet to load
type GetInput struct {
	PlayerID string
}

// GetOutput holds the stored wallet
type GetOutput struct {
	Wallet garden.Wallet
}

// SaveInput is a full wallet replacement
type SaveInput struct {
	PlayerID string
	Wallet   garden.Wallet
}

// SaveOutput is empty
type SaveOutput struct{}

var playerIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,128}$`)

func validatePlayerID(id string) error {
	if id == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if !playerIDPattern.MatchString(id) {
		return errors.InvalidArgumentf("player ID %q contains unsupported characters", id)
	}
	return nil
}

func validateWallet(w garden.Wallet) error {
	for _, c := range garden.Currencies {
		if w.Get(c) < 0 {
			return errors.InvalidArgumentf("%s balance cannot be negative", c)
		}
	}
	return nil
}
