package eth

import "errors"

// ErrPairMismatch is returned when a src/dst pair is not the pool's token pair.
var ErrPairMismatch = errors.New("pair does not match src/dst")
