package risk

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrInputRange        = errors.New("input out of range")
	ErrParse             = errors.New("parse error")
	ErrDirectionMismatch = errors.New("direction mismatch")
	ErrCalculation       = errors.New("calculation error")
)

// Error codes.
const (
	CodeCapitalNotPositive  = "CAPITAL_NOT_POSITIVE"
	CodeStopLossTooSmall    = "STOP_LOSS_TOO_SMALL"
	CodeStopLossTooLarge    = "STOP_LOSS_TOO_LARGE"
	CodeLeverageOutOfRange  = "LEVERAGE_OUT_OF_RANGE"
	CodeNoRiskLevels        = "NO_RISK_LEVELS"
	CodeRiskLevelOutOfRange = "RISK_LEVEL_OUT_OF_RANGE"
	CodeTakeProfitNegative  = "TAKE_PROFIT_NEGATIVE"
	CodeTakeProfitTooLarge  = "TAKE_PROFIT_TOO_LARGE"
	CodeFeeOutOfRange       = "FEE_OUT_OF_RANGE"
	CodePriceNotPositive    = "PRICE_NOT_POSITIVE"
	CodeMarginNotPositive   = "MARGIN_NOT_POSITIVE"
	CodeEmptyInput          = "EMPTY_INPUT"
	CodeMalformedRiskLevel  = "MALFORMED_RISK_LEVEL"
	CodeMalformedNumber     = "MALFORMED_NUMBER"
	CodeStopAboveEntry      = "STOP_ABOVE_ENTRY"
	CodeStopBelowEntry      = "STOP_BELOW_ENTRY"
	CodeZeroDivisor         = "ZERO_DIVISOR"
	CodeUnknownDirection    = "UNKNOWN_DIRECTION"
)

// Error is the concrete error value returned by the engine. Kind is one of
// the Err* sentinels; Code is a stable machine-readable identifier and Msg
// the human-readable message shown to the trader.
type Error struct {
	Kind  error
	Code  string
	Msg   string
	Token string // offending input text, parse errors only
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func rangeErr(code, format string, args ...any) *Error {
	return &Error{Kind: ErrInputRange, Code: code, Msg: fmt.Sprintf(format, args...)}
}

func parseErr(code, token, format string, args ...any) *Error {
	return &Error{Kind: ErrParse, Code: code, Msg: fmt.Sprintf(format, args...), Token: token}
}

// CodeOf returns the code of an engine error, or "" for any other error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
