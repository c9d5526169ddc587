package export

import "errors"

var (
	ErrUnknownFormat = errors.New("export: unknown format")
	ErrUnknownKind   = errors.New("export: unknown step kind")
)
