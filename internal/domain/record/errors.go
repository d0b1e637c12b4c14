package record

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrValidationFailed = errors.New("validation failed")
)
