package interop

import "errors"

// ErrShapeMismatch is returned by FromTriangleList when the supplied index
// buffer's length is not a multiple of 3, and by ToTriangleList when a face
// is not a triangle.
var ErrShapeMismatch = errors.New("interop: triangle index count not a multiple of 3")
