package main

import "errors"

var (
	ErrInvalidValue = errors.New("invalid value")
)
