package service

import "errors"

var (
	ErrNoTargets      = errors.New("nothing to check")
	ErrBadFixtureName = errors.New("fixture file name must look like v<N>.json or v<N>_<case>.json")
)
