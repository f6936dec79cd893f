package cli

import "github.com/zeebo/errs"

// Error is the class of errors returned by the command tree.
var Error = errs.Class("lexorank")
