package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get user memory")
	ErrFailedToSave = errors.New("failed to save user memory")
)
