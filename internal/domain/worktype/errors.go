package worktype

import "errors"

var (
	ErrWorkTypeNotFound = errors.New("work type not found")
	ErrNoFieldsDefined  = errors.New("work type has no fields defined")
	ErrValidationFailed = errors.New("validation failed")
)
