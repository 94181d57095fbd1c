package lead

import "errors"

var (
	ErrUnknownField = errors.New("unknown mapping field")
	ErrUnknownActor = errors.New("unknown actor")
)
