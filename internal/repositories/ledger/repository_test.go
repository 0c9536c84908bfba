package ledger_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/repositories/ledger"
	"github.com/KirkDiggler/garden-api/internal/testutils"
)

// RepositoryContractSuite runs the same behaviour checks against every backend
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func() ledger.Repository
	repo    ledger.Repository
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func (s *RepositoryContractSuite) TestMissingWalletIsNotFound() {
	_, err := s.repo.Get(s.ctx, ledger.GetInput{PlayerID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestSaveThenGet() {
	w := garden.Wallet{Primary: 10, Secondary: 4400, Premium: 1}
	_, err := s.repo.Save(s.ctx, ledger.SaveInput{PlayerID: "player-1", Wallet: w})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, ledger.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(w, out.Wallet)

	w.Secondary = 0
	_, err = s.repo.Save(s.ctx, ledger.SaveInput{PlayerID: "player-1", Wallet: w})
	s.Require().NoError(err)

	out, err = s.repo.Get(s.ctx, ledger.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(w, out.Wallet)
}

func (s *RepositoryContractSuite) TestPlayersAreIsolated() {
	_, err := s.repo.Save(s.ctx, ledger.SaveInput{PlayerID: "a", Wallet: garden.Wallet{Primary: 1}})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, ledger.GetInput{PlayerID: "b"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, ledger.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, ledger.GetInput{PlayerID: "../etc"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, ledger.SaveInput{PlayerID: "p", Wallet: garden.Wallet{Premium: -1}})
	s.True(errors.IsInvalidArgument(err))
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: ledger.NewInMemoryRepository,
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() ledger.Repository {
			client, _ := testutils.CreateTestRedisClient(t)
			repo, err := ledger.NewRedisRepository(&ledger.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("NewRedisRepository: %v", err)
			}
			return repo
		},
	})
}

func TestLocalRepository(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() ledger.Repository {
			dir, err := os.MkdirTemp(home, "app")
			if err != nil {
				t.Fatalf("MkdirTemp: %v", err)
			}
			manager, err := ledger.OpenLocalStore("garden_test_" + lastElem(dir))
			if err != nil {
				t.Skipf("local store unavailable: %v", err)
			}
			repo, err := ledger.NewLocalRepository(&ledger.LocalConfig{Manager: manager})
			if err != nil {
				t.Fatalf("NewLocalRepository: %v", err)
			}
			return repo
		},
	})
}

func lastElem(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}

type RedisRepositoryTestSuite struct {
	suite.Suite
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestStoredFormat() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	repo, err := ledger.NewRedisRepository(&ledger.RedisConfig{Client: client})
	s.Require().NoError(err)

	_, err = repo.Save(context.Background(), ledger.SaveInput{
		PlayerID: "p1",
		Wallet:   garden.Wallet{Primary: 1, Secondary: 2, Premium: 3},
	})
	s.Require().NoError(err)

	raw, err := mr.Get("moyu_currency:p1")
	s.Require().NoError(err)
	s.JSONEq(`{"primary":1,"secondary":2,"premium":3}`, raw)
	s.False(mr.Exists("moyu_currency:p2"))
	s.Zero(mr.TTL("moyu_currency:p1"), "wallets never expire")
}

func (s *RedisRepositoryTestSuite) TestCorruptValue() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	repo, err := ledger.NewRedisRepository(&ledger.RedisConfig{Client: client, KeyPrefix: "w"})
	s.Require().NoError(err)

	s.Require().NoError(mr.Set("w:p1", "{not json"))

	_, err = repo.Get(context.Background(), ledger.GetInput{PlayerID: "p1"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisRepositoryTestSuite) TestRequiresClient() {
	_, err := ledger.NewRedisRepository(&ledger.RedisConfig{})
	s.Error(err)

	_, err = ledger.NewLocalRepository(&ledger.LocalConfig{})
	s.Error(err)
}
