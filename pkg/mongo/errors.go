package mongo

import "errors"

// ErrConnection is returned when the store cannot be reached at startup.
var ErrConnection = errors.New("mongo: connection failed")
