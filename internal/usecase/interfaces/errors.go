package interfaces

import "errors"

// ErrDuplicateKey is returned by Create methods when the key is already taken.
var ErrDuplicateKey = errors.New("item already exists")
