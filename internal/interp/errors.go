package interp

import "github.com/mpgarate/boxx/internal/boxxerr"

// Package-level sentinels: IntegerOverflowError/IntegerUnderflowError
// carry no fields, so one instance of each is reused everywhere a
// checked-arithmetic operation traps.
var (
	errOverflow  error = boxxerr.NewIntegerOverflow()
	errUnderflow error = boxxerr.NewIntegerUnderflow()
)
