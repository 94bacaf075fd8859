package catmullclark

import "errors"

// ErrUnknownMethod is returned when mesh.Options.Method names a
// subdivision scheme this package does not implement.
var ErrUnknownMethod = errors.New("catmullclark: unknown method")
