package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/garden-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "session not found",
			expected: "NOT_FOUND: session not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "insufficient gold",
			expected: "FAILED_PRECONDITION: insufficient gold",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.FailedPrecondition("insufficient funds").
		WithMeta("currency", "primary").
		WithMetaMap(map[string]interface{}{"balance": 10, "required": 40})

	s.Equal("primary", err.Meta["currency"])
	s.Equal(10, err.Meta["balance"])
	s.Equal(40, err.Meta["required"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to save balance")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to save balance", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("balance not found").WithMeta("player_id", "p1")
	wrapped := errors.Wrapf(baseErr, "load %s", "p1")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("load p1", wrapped.Message)
	s.Equal("p1", wrapped.Meta["player_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("no tree").WithMeta("row", 2)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "bad target")

	s.Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Equal(2, wrapped.Meta["row"])

	wrapped.Meta["row"] = 3
	s.Equal(2, baseErr.Meta["row"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
	s.True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestHelpers() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
	s.True(errors.IsFailedPrecondition(errors.FailedPreconditionf("need %d", 5)))
	s.True(errors.IsUnavailable(errors.Unavailable("down")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsMeta() {
	err := errors.FailedPrecondition("insufficient funds").
		WithMeta("currency", "primary").
		WithMeta("required", int64(40))

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("insufficient funds", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsFailedPrecondition(back))
	meta := errors.GetMeta(back)
	s.Equal("primary", meta["currency"])
	s.Equal(float64(40), meta["required"])
}

func (s *ErrorsTestSuite) TestGRPCValidationMeta() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("session_id")

	back := errors.FromGRPCError(errors.ToGRPCError(vb.Build()))
	s.True(errors.IsInvalidArgument(back))
	fields, ok := errors.GetMeta(back)["validation_errors"].(map[string]interface{})
	s.Require().True(ok)
	s.Contains(fields, "session_id")
}

func (s *ErrorsTestSuite) TestGRPCPlainErrors() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())

	passthrough := status.Error(codes.Unavailable, "down")
	s.Equal(passthrough, errors.ToGRPCError(passthrough))

	back := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal("invalid input", errors.GetMessage(back))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
