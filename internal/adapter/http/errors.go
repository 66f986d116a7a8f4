package http

import "errors"

var (
	errInvalidEntry   = errors.New("invalid entry payload")
	errUnknownSection = errors.New("unknown section")
)
