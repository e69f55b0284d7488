package restModel

import "errors"

var (
	ErrErrorStatus     = errors.New("response status is Error, payload must be decoded as ErrorPayload")
	ErrOkStatus        = errors.New("response status is Ok, payload is not an ErrorPayload")
	ErrUnknownContract = errors.New("unknown contract")
)
