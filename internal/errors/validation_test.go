package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/garden-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("session_id", "is required")
	ve.AddFieldErrorf("level", "must be at most %d", 15)

	s.True(ve.HasErrors())
	s.Contains(ve.Error(), "session_id: is required")
	s.Contains(ve.Error(), "level: must be at most 15")

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "player-1", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("player_id", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRangeAndEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 16, 0, 15, vb)
	errors.ValidateRange("row", 3, 0, 7, vb)
	errors.ValidateEnum("category", "dragon", []string{"classic", "shiny"}, vb)
	errors.ValidatePositive("count", 0, vb)

	err := vb.Build()
	s.Require().Error(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(fields["level"][0], "must be between 0 and 15")
	s.Contains(fields["category"][0], "must be one of: classic, shiny")
	s.Contains(fields["count"][0], "greater than zero")
	s.NotContains(fields, "row")
}
