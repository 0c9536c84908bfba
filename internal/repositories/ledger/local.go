package ledger

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/quasilyte/gdata/v2"

	"github.com/KirkDiggler/garden-api/internal/errors"
)

// localObject is the gdata object holding every wallet, one property per player
const localObject = "currency"

// LocalConfig holds the dependencies of the local-disk repository
type LocalConfig struct {
	Manager *gdata.Manager
}

// Validate ensures all required dependencies are provided
func (c *LocalConfig) Validate() error {
	if c.Manager == nil {
		return errors.InvalidArgument("gdata manager is required")
	}
	return nil
}

type localRepository struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// NewLocalRepository stores wallets in the per-user application data
// directory managed by gdata
func NewLocalRepository(cfg *LocalConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &localRepository{manager: cfg.Manager}, nil
}

// OpenLocalStore opens the gdata store for appName
func OpenLocalStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open local store")
	}
	return m, nil
}

var _ Repository = (*localRepository)(nil)

func (r *localRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.manager.ObjectPropExists(localObject, input.PlayerID) {
		return nil, errors.NotFound("wallet not found").WithMeta("player_id", input.PlayerID)
	}

	raw, err := r.manager.LoadObjectProp(localObject, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wallet")
	}

	var out GetOutput
	if err := json.Unmarshal(raw, &out.Wallet); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal wallet")
	}
	return &out, nil
}

func (r *localRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}
	if err := validateWallet(input.Wallet); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(input.Wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal wallet")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.manager.SaveObjectProp(localObject, input.PlayerID, raw); err != nil {
		return nil, errors.Wrap(err, "failed to save wallet")
	}
	return &SaveOutput{}, nil
}
