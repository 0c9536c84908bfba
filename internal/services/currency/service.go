// Package currency applies balance changes to persisted player wallets
package currency

//go:generate mockgen -destination=mock/mock_service.go -package=currencymock github.com/KirkDiggler/garden-api/internal/services/currency Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/repositories/ledger"
)

// Service reads and mutates wallets. Every mutation is load, modify, save.
type Service interface {
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)
	Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error)
	// Debit fails with FailedPrecondition and leaves the wallet untouched when
	// the balance cannot cover the amount
	Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error)
}

// GetBalanceInput names the player
type GetBalanceInput struct {
	PlayerID string
}

// GetBalanceOutput holds the wallet, zero-valued for a new player
type GetBalanceOutput struct {
	Wallet garden.Wallet
}

// CreditInput adds Amount of Currency
type CreditInput struct {
	PlayerID string
	Currency garden.Currency
	Amount   int64
}

// CreditOutput holds the wallet after the credit
type CreditOutput struct {
	Wallet garden.Wallet
}

// DebitInput removes Amount of Currency
type DebitInput struct {
	PlayerID string
	Currency garden.Currency
	Amount   int64
}

// DebitOutput holds the wallet after the debit
type DebitOutput struct {
	Wallet garden.Wallet
}

// Config holds the dependencies for the currency service
type Config struct {
	Repository ledger.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	return vb.Build()
}

type service struct {
	repo ledger.Repository
}

// NewService creates a currency service backed by the given ledger
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{repo: cfg.Repository}, nil
}

func (s *service) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	wallet, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{Wallet: wallet}, nil
}

func (s *service) Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateChange(input.Currency, input.Amount); err != nil {
		return nil, err
	}

	wallet, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	wallet = wallet.With(input.Currency, wallet.Get(input.Currency)+input.Amount)
	if err := s.save(ctx, input.PlayerID, wallet); err != nil {
		return nil, err
	}

	slog.Debug("credited wallet",
		"player_id", input.PlayerID,
		"currency", input.Currency,
		"amount", input.Amount,
		"balance", wallet.Get(input.Currency))

	return &CreditOutput{Wallet: wallet}, nil
}

func (s *service) Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateChange(input.Currency, input.Amount); err != nil {
		return nil, err
	}

	wallet, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	balance := wallet.Get(input.Currency)
	if balance < input.Amount {
		return nil, errors.InsufficientFunds(string(input.Currency), balance, input.Amount)
	}

	wallet = wallet.With(input.Currency, balance-input.Amount)
	if err := s.save(ctx, input.PlayerID, wallet); err != nil {
		return nil, err
	}

	slog.Debug("debited wallet",
		"player_id", input.PlayerID,
		"currency", input.Currency,
		"amount", input.Amount,
		"balance", wallet.Get(input.Currency))

	return &DebitOutput{Wallet: wallet}, nil
}

func (s *service) load(ctx context.Context, playerID string) (garden.Wallet, error) {
	out, err := s.repo.Get(ctx, ledger.GetInput{PlayerID: playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return garden.Wallet{}, nil
		}
		return garden.Wallet{}, errors.Wrap(err, "failed to load wallet")
	}
	return out.Wallet, nil
}

func (s *service) save(ctx context.Context, playerID string, wallet garden.Wallet) error {
	if _, err := s.repo.Save(ctx, ledger.SaveInput{PlayerID: playerID, Wallet: wallet}); err != nil {
		return errors.Wrap(err, "failed to save wallet")
	}
	return nil
}

func validateChange(c garden.Currency, amount int64) error {
	vb := errors.NewValidationBuilder()

	if parsed, ok := garden.ParseCurrency(string(c)); !ok || parsed != c {
		vb.InvalidField("currency", "must be primary, secondary or premium")
	}
	errors.ValidatePositive("amount", amount, vb)

	return vb.Build()
}
