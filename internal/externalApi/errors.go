package externalApi

import "errors"

var (
	ErrEmptyResponse    = errors.New("empty response body")
	ErrUnexpectedStatus = errors.New("unexpected http status")
)
