package header

import "errors"

// ErrShortBuffer is returned by Decode when fewer than Size bytes are
// available.
var ErrShortBuffer = errors.New("header: buffer shorter than 80 bytes")
