package core

import (
	"errors"
)

var (
	ErrSingularMatrix    = errors.New("matrix is singular")
	ErrFilterUnavailable = errors.New("legacy matrix filter unavailable")
	ErrInvalidScene      = errors.New("invalid scene")
	ErrUnknownNode       = errors.New("unknown node")
)
