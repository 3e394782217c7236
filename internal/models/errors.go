package models

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown competition format")
	ErrInvalidWindow = errors.New("invalid report window")
)
