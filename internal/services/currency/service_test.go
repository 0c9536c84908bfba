package currency_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/repositories/ledger"
	ledgermock "github.com/KirkDiggler/garden-api/internal/repositories/ledger/mock"
	"github.com/KirkDiggler/garden-api/internal/services/currency"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *ledgermock.MockRepository
	service  currency.Service
	ctx      context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = ledgermock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := currency.NewService(&currency.Config{Repository: s.mockRepo})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestNewServiceRequiresRepository() {
	_, err := currency.NewService(&currency.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGetBalanceNewPlayer() {
	s.mockRepo.EXPECT().
		Get(s.ctx, ledger.GetInput{PlayerID: "p1"}).
		Return(nil, errors.NotFound("wallet not found"))

	out, err := s.service.GetBalance(s.ctx, &currency.GetBalanceInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(garden.Wallet{}, out.Wallet)
}

func (s *ServiceTestSuite) TestGetBalanceRepositoryFailure() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.service.GetBalance(s.ctx, &currency.GetBalanceInput{PlayerID: "p1"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ServiceTestSuite) TestCredit() {
	s.mockRepo.EXPECT().
		Get(s.ctx, ledger.GetInput{PlayerID: "p1"}).
		Return(&ledger.GetOutput{Wallet: garden.Wallet{Secondary: 100}}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, ledger.SaveInput{PlayerID: "p1", Wallet: garden.Wallet{Secondary: 540}}).
		Return(&ledger.SaveOutput{}, nil)

	out, err := s.service.Credit(s.ctx, &currency.CreditInput{
		PlayerID: "p1",
		Currency: garden.CurrencySecondary,
		Amount:   440,
	})
	s.Require().NoError(err)
	s.Equal(int64(540), out.Wallet.Secondary)
}

func (s *ServiceTestSuite) TestCreditRejectsBadAmounts() {
	for _, amount := range []int64{0, -5} {
		_, err := s.service.Credit(s.ctx, &currency.CreditInput{
			PlayerID: "p1",
			Currency: garden.CurrencyPrimary,
			Amount:   amount,
		})
		s.True(errors.IsInvalidArgument(err), "amount %d", amount)
	}

	_, err := s.service.Credit(s.ctx, &currency.CreditInput{
		PlayerID: "p1",
		Currency: garden.Currency("gold"),
		Amount:   1,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestDebit() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&ledger.GetOutput{Wallet: garden.Wallet{Primary: 100, Premium: 2}}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, ledger.SaveInput{PlayerID: "p1", Wallet: garden.Wallet{Primary: 70, Premium: 2}}).
		Return(&ledger.SaveOutput{}, nil)

	out, err := s.service.Debit(s.ctx, &currency.DebitInput{
		PlayerID: "p1",
		Currency: garden.CurrencyPrimary,
		Amount:   30,
	})
	s.Require().NoError(err)
	s.Equal(int64(70), out.Wallet.Primary)
}

func (s *ServiceTestSuite) TestDebitInsufficientFunds() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&ledger.GetOutput{Wallet: garden.Wallet{Primary: 10}}, nil)
	// no Save expected

	_, err := s.service.Debit(s.ctx, &currency.DebitInput{
		PlayerID: "p1",
		Currency: garden.CurrencyPrimary,
		Amount:   11,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	meta := errors.GetMeta(err)
	s.Equal("primary", meta["currency"])
	s.Equal(int64(10), meta["balance"])
	s.Equal(int64(11), meta["required"])
}

func (s *ServiceTestSuite) TestSaveFailureIsReturned() {
	s.mockRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(&ledger.GetOutput{}, nil)
	s.mockRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	_, err := s.service.Credit(s.ctx, &currency.CreditInput{
		PlayerID: "p1",
		Currency: garden.CurrencyPremium,
		Amount:   1,
	})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

// Exercises the real in-memory ledger end to end
func (s *ServiceTestSuite) TestWithInMemoryLedger() {
	svc, err := currency.NewService(&currency.Config{Repository: ledger.NewInMemoryRepository()})
	s.Require().NoError(err)

	_, err = svc.Credit(s.ctx, &currency.CreditInput{PlayerID: "p", Currency: garden.CurrencyPrimary, Amount: 5})
	s.Require().NoError(err)
	_, err = svc.Debit(s.ctx, &currency.DebitInput{PlayerID: "p", Currency: garden.CurrencyPrimary, Amount: 6})
	s.True(errors.IsFailedPrecondition(err))

	out, err := svc.GetBalance(s.ctx, &currency.GetBalanceInput{PlayerID: "p"})
	s.Require().NoError(err)
	s.Equal(int64(5), out.Wallet.Primary)
}
