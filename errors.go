package lexorank

import "github.com/zeebo/errs"

// Error classes.
var (
	ErrInvalidFormat   = errs.Class("invalid rank format")
	ErrUnknownBucket   = errs.Class("unknown bucket")
	ErrDifferentBucket = errs.Class("different bucket")
	ErrIdenticalRank   = errs.Class("identical rank")
)
