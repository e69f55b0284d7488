package protoConverter

import "errors"

var (
	ErrPrecision         = errors.New("value has more than 9 fractional digits")
	ErrOverflow          = errors.New("value does not fit into int64 units")
	ErrInvalidNano       = errors.New("invalid nano part")
	ErrUnsupportedCandle = errors.New("candle resolution is not supported by the v2 api")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
)
