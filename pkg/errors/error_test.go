package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("[100] invalid parameter", err.Error())
	suite.Nil(err.Unwrap())
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeIndicatorNotFound, "indicator %s not found", "foo")
	suite.Equal(ErrCodeIndicatorNotFound, err.Code)
	suite.Equal("indicator foo not found", err.Message)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("duckdb: file not found")
	err := Wrap(ErrCodeQueryFailed, "failed to read candles", cause)
	suite.Equal(ErrCodeQueryFailed, err.Code)
	suite.Equal(cause, err.Unwrap())
	suite.Contains(err.Error(), "duckdb: file not found")
}

func (suite *ErrorTestSuite) TestWrapfError() {
	err := Wrapf(ErrCodeRunCancelled, context.Canceled, "run of %d entries cancelled", 3)
	suite.Equal("run of 3 entries cancelled", err.Message)
	suite.True(errors.Is(err, context.Canceled))
}

func (suite *ErrorTestSuite) TestGetCodeThroughWrapping() {
	inner := New(ErrCodeIndicatorPanicked, "indicator panicked")
	wrapped := fmt.Errorf("RSI(14): %w", inner)
	suite.Equal(ErrCodeIndicatorPanicked, GetCode(wrapped))
	suite.True(HasCode(wrapped, ErrCodeIndicatorPanicked))
	suite.False(HasCode(wrapped, ErrCodeIndicatorNotFound))
}

func (suite *ErrorTestSuite) TestGetCodeStandardError() {
	suite.Equal(ErrCodeUnknown, GetCode(errors.New("plain")))
	suite.Equal(ErrCodeUnknown, GetCode(nil))
}

func (suite *ErrorTestSuite) TestAsError() {
	err := Wrap(ErrCodeOutputWriteFailed, "write failed", errors.New("disk full"))
	var coded *Error
	suite.True(errors.As(err, &coded))
	suite.Equal(ErrCodeOutputWriteFailed, coded.Code)
	suite.Equal("output", coded.Category())
	suite.Equal("[701] write failed: disk full", err.Error())
}

func (suite *ErrorTestSuite) TestIsMatchesByCode() {
	err := Wrapf(ErrCodeRunCancelled, context.DeadlineExceeded, "run cancelled")

	suite.ErrorIs(err, New(ErrCodeRunCancelled, ""))
	suite.NotErrorIs(err, New(ErrCodeQueryFailed, ""))
	suite.ErrorIs(err, context.DeadlineExceeded)
}

func (suite *ErrorTestSuite) TestHasCodeSearchesJoinedErrors() {
	joined := errors.Join(
		New(ErrCodeIndicatorPanicked, "RSI panicked"),
		fmt.Errorf("MACD: %w", New(ErrCodeIndicatorCalculation, "mis-sized output")),
	)

	suite.Equal(ErrCodeIndicatorPanicked, GetCode(joined))
	suite.True(HasCode(joined, ErrCodeIndicatorPanicked))
	suite.True(HasCode(joined, ErrCodeIndicatorCalculation))
	suite.False(HasCode(joined, ErrCodeRunCancelled))
	suite.False(HasCode(nil, ErrCodeUnknown))
}

func (suite *ErrorTestSuite) TestErrorCodeRanges() {
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(200), ErrCodeDataNotFound)
	suite.Equal(ErrorCode(300), ErrCodeIndicatorNotFound)
	suite.Equal(ErrorCode(303), ErrCodeIndicatorPanicked)
	suite.Equal(ErrorCode(701), ErrCodeOutputWriteFailed)
}

func (suite *ErrorTestSuite) TestCategory() {
	suite.Equal("validation", ErrCodeInvalidPeriod.Category())
	suite.Equal("data", ErrCodeQueryFailed.Category())
	suite.Equal("indicator", ErrCodeIndicatorPanicked.Category())
	suite.Equal("output", ErrCodeOutputWriteFailed.Category())
	suite.Equal("general", ErrCodeUnknown.Category())
}

func (suite *ErrorTestSuite) TestHTTPStatus() {
	suite.Equal(400, ErrCodeInvalidParameter.HTTPStatus())
	suite.Equal(400, ErrCodeInputParseFailed.HTTPStatus())
	suite.Equal(404, ErrCodeIndicatorNotFound.HTTPStatus())
	suite.Equal(409, ErrCodeIndicatorAlreadyExists.HTTPStatus())
	suite.Equal(504, ErrCodeRunCancelled.HTTPStatus())
	suite.Equal(500, ErrCodeIndicatorPanicked.HTTPStatus())
	suite.Equal(500, ErrCodeOutputWriteFailed.HTTPStatus())
}
