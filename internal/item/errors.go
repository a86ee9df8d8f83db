package item

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidID        = errors.New("invalid item id")
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = errors.New("name must be at most 255 characters")
	ErrInvalidAttribute = errors.New("invalid attribute name")
	ErrInvalidPayload   = errors.New("invalid payload")
)
