package garden

import (
	"context"
	"log/slog"
	"math"
	"time"

	entity "github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/services/currency"
)

// Sell sells every grid fruit of the level for secondary currency. The cells
// are cleared only once the ledger accepted the credit.
func (o *orchestrator) Sell(ctx context.Context, input *SellInput) (*SellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !entity.ValidFruitLevel(input.Level) {
		return nil, errors.InvalidArgumentf("fruit level %d out of range (%d-%d)",
			input.Level, entity.MinLevel, entity.MaxFruitLevel)
	}

	out := &SellOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		credited := false
		res, err := sess.grid.Sell(input.Level, func(amount int64) error {
			cr, err := o.currency.Credit(ctx, &currency.CreditInput{
				PlayerID: sess.playerID,
				Currency: entity.CurrencySecondary,
				Amount:   amount,
			})
			if err != nil {
				return err
			}
			out.Wallet = cr.Wallet
			credited = true
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "failed to credit sale")
		}

		if !credited {
			wallet, err := o.wallet(ctx, sess.playerID)
			if err != nil {
				return err
			}
			out.Wallet = wallet
			return nil
		}

		out.Count = res.Count
		out.Amount = res.Amount
		slog.Info("sold fruit",
			"session_id", sess.id,
			"player_id", sess.playerID,
			"level", input.Level,
			"count", res.Count,
			"amount", res.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SpeedUp finishes the regrowth of a growing tree. The debit happens before
// the tree changes, so a failed debit leaves it growing.
func (o *orchestrator) SpeedUp(ctx context.Context, input *SpeedUpInput) (*SpeedUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &SpeedUpOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		t, err := treeAt(sess.grid, input.Pos)
		if err != nil {
			return err
		}

		if t == nil {
			return nil
		}

		now := o.clock.Now()
		o.reconcile(ctx, sess, input.Pos, t, now)
		if !t.IsGrowing() {
			return nil
		}

		out.Cost = o.speedUpCost(t.RemainingTime(now))
		if out.Cost > 0 {
			dr, err := o.currency.Debit(ctx, &currency.DebitInput{
				PlayerID: sess.playerID,
				Currency: entity.CurrencyPrimary,
				Amount:   out.Cost,
			})
			if err != nil {
				return err
			}
			out.Wallet = dr.Wallet
		} else {
			wallet, err := o.wallet(ctx, sess.playerID)
			if err != nil {
				return err
			}
			out.Wallet = wallet
		}

		out.Applied = t.InstantGrowth()
		o.publishCell(ctx, EventTreeReady, sess, input.Pos, entity.TreeKey(t.Level()))

		slog.Info("sped up tree",
			"session_id", sess.id,
			"player_id", sess.playerID,
			"pos", input.Pos.String(),
			"cost", out.Cost)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// speedUpCost charges per started minute
func (o *orchestrator) speedUpCost(remaining time.Duration) int64 {
	minutes := int64(math.Ceil(remaining.Minutes()))
	return minutes * o.speedUp
}

