package garden_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/garden-api/internal/engine/grid"
	"github.com/KirkDiggler/garden-api/internal/engine/growth"
	entity "github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/orchestrators/garden"
	"github.com/KirkDiggler/garden-api/internal/pkg/clock"
	"github.com/KirkDiggler/garden-api/internal/pkg/idgen"
	"github.com/KirkDiggler/garden-api/internal/services/currency"
	currencymock "github.com/KirkDiggler/garden-api/internal/services/currency/mock"
)

// EconomyTestSuite drives the ledger through a mock to check failure paths
type EconomyTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	mockCurrency *currencymock.MockService
	orchestrator garden.Service
	sessionID    string
}

func TestEconomySuite(t *testing.T) {
	suite.Run(t, new(EconomyTestSuite))
}

func (s *EconomyTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockCurrency = currencymock.NewMockService(s.ctrl)

	var err error
	s.orchestrator, err = garden.NewOrchestrator(&garden.Config{
		Clock:                clock.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
		IDGenerator:          idgen.NewSequential("session"),
		SpriteIDGenerator:    idgen.NewSequential("sprite"),
		Currency:             s.mockCurrency,
		EventBus:             events.NewBus(),
		Roller:               dice.DefaultRoller,
		GridWidth:            15,
		GridHeight:           8,
		Growth:               growth.DefaultRules(),
		Sprites:              garden.DefaultSpriteField(),
		SpeedUpCostPerMinute: 2,
	})
	s.Require().NoError(err)

	s.mockCurrency.EXPECT().
		GetBalance(gomock.Any(), &currency.GetBalanceInput{PlayerID: "p1"}).
		Return(&currency.GetBalanceOutput{}, nil)
	out, err := s.orchestrator.StartSession(s.ctx, &garden.StartSessionInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.sessionID = out.Snapshot.SessionID
}

func (s *EconomyTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EconomyTestSuite) pickTwo() grid.Pos {
	tree, err := s.orchestrator.GenerateTree(s.ctx, &garden.GenerateTreeInput{SessionID: s.sessionID, Level: 0})
	s.Require().NoError(err)
	for i := 0; i < 2; i++ {
		out, err := s.orchestrator.PickFruit(s.ctx, &garden.PickFruitInput{SessionID: s.sessionID, Pos: tree.Pos})
		s.Require().NoError(err)
		s.Require().True(out.Applied)
	}
	return tree.Pos
}

func (s *EconomyTestSuite) fruitCount() int {
	s.mockCurrency.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(&currency.GetBalanceOutput{}, nil)
	out, err := s.orchestrator.GetSnapshot(s.ctx, &garden.GetSnapshotInput{SessionID: s.sessionID})
	s.Require().NoError(err)
	n := 0
	for _, c := range out.Snapshot.Cells {
		if c.Kind == grid.KindFruit {
			n++
		}
	}
	return n
}

func (s *EconomyTestSuite) TestSellCreditsSecondary() {
	s.pickTwo()

	s.mockCurrency.EXPECT().
		Credit(gomock.Any(), &currency.CreditInput{
			PlayerID: "p1",
			Currency: entity.CurrencySecondary,
			Amount:   200,
		}).
		Return(&currency.CreditOutput{Wallet: entity.Wallet{Secondary: 200}}, nil)

	out, err := s.orchestrator.Sell(s.ctx, &garden.SellInput{SessionID: s.sessionID, Level: 0})
	s.Require().NoError(err)
	s.Equal(2, out.Count)
	s.Equal(int64(200), out.Amount)
	s.Equal(0, s.fruitCount())
}

func (s *EconomyTestSuite) TestSellKeepsFruitWhenLedgerFails() {
	s.pickTwo()

	s.mockCurrency.EXPECT().
		Credit(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("ledger offline"))

	_, err := s.orchestrator.Sell(s.ctx, &garden.SellInput{SessionID: s.sessionID, Level: 0})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal(2, s.fruitCount())
}

func (s *EconomyTestSuite) TestSpeedUpDebitsPrimaryPerStartedMinute() {
	tree, err := s.orchestrator.GenerateTree(s.ctx, &garden.GenerateTreeInput{SessionID: s.sessionID, Level: 2})
	s.Require().NoError(err)
	_, err = s.orchestrator.HarvestTree(s.ctx, &garden.HarvestTreeInput{SessionID: s.sessionID, Pos: tree.Pos})
	s.Require().NoError(err)

	// level 2 regrows in 1h: 60 minutes at 2 per minute
	s.mockCurrency.EXPECT().
		Debit(gomock.Any(), &currency.DebitInput{
			PlayerID: "p1",
			Currency: entity.CurrencyPrimary,
			Amount:   120,
		}).
		Return(&currency.DebitOutput{Wallet: entity.Wallet{Primary: 5}}, nil)

	out, err := s.orchestrator.SpeedUp(s.ctx, &garden.SpeedUpInput{SessionID: s.sessionID, Pos: tree.Pos})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(int64(120), out.Cost)
	s.Equal(int64(5), out.Wallet.Primary)
}
