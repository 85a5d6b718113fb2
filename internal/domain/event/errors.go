package event

import "errors"

var (
	ErrShareCodeTaken = errors.New("share code already in use")
	ErrNotFound       = errors.New("event not found")
)
