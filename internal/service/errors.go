package service

import (
	"errors"

	"github.com/nulln0ne/amm-quoter/internal/eth"
)

var (
	ErrSameToken     = errors.New("src and dst are equal")
	ErrPairMismatch  = eth.ErrPairMismatch
	ErrEmptyReserves = errors.New("empty reserves")
)
