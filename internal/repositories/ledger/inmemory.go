package ledger

import (
	"context"
	"sync"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	wallets map[string]garden.Wallet
}

// NewInMemoryRepository keeps wallets for the lifetime of the process
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		wallets: make(map[string]garden.Wallet),
	}
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[input.PlayerID]
	if !ok {
		return nil, errors.NotFound("wallet not found").WithMeta("player_id", input.PlayerID)
	}
	return &GetOutput{Wallet: w}, nil
}

func (r *inMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}
	if err := validateWallet(input.Wallet); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.wallets[input.PlayerID] = input.Wallet
	return &SaveOutput{}, nil
}
