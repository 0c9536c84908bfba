package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/garden-api/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("sprite")
	s.Equal("sprite_1", gen.Generate())
	s.Equal("sprite_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestUUIDUnique() {
	gen := idgen.NewUUID("session")
	a, b := gen.Generate(), gen.Generate()
	s.NotEqual(a, b)
	s.True(strings.HasPrefix(a, "session_"))
	s.Len(strings.TrimPrefix(a, "session_"), 36)
}
