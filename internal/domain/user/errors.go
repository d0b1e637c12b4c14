package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrCannotDeleteSelf = errors.New("cannot delete own account")
	ErrValidationFailed = errors.New("validation failed")
	ErrLastAdminRemains = errors.New("cannot remove the last admin")
)
