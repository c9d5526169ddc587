package config

import "errors"

var (
	ErrInvalidInput  = errors.New("config: invalid input")
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
