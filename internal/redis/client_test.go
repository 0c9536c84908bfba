package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/garden-api/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	_, err := redis.NewClient("", nil)
	s.Error(err)
}

func (s *ClientTestSuite) TestPing() {
	mr := miniredis.RunT(s.T())

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client, time.Second))

	mr.Close()
	s.Error(redis.Ping(context.Background(), client, 200*time.Millisecond))
}

func (s *ClientTestSuite) TestNewClientFromURL() {
	mr := miniredis.RunT(s.T())

	client, err := redis.NewClientFromURL("redis://" + mr.Addr() + "/0")
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client, time.Second))

	_, err = redis.NewClientFromURL("not a url")
	s.Error(err)
}

func (s *ClientTestSuite) TestScanKeys() {
	mr := miniredis.RunT(s.T())
	s.Require().NoError(mr.Set("moyu_currency:p1", "{}"))
	s.Require().NoError(mr.Set("moyu_currency:p2", "{}"))
	s.Require().NoError(mr.Set("other:p3", "{}"))

	client, err := redis.NewClient(mr.Addr(), nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	keys, err := redis.ScanKeys(context.Background(), client, "moyu_currency:*")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"moyu_currency:p1", "moyu_currency:p2"}, keys)
}
