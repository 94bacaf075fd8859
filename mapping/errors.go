package mapping

import "errors"

// ErrLengthMismatch is returned by Compile when the upstream map's self
// length does not equal the downstream map's base length.
var ErrLengthMismatch = errors.New("mapping: length mismatch in compile")
