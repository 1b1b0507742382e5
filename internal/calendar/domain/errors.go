package domain

import "errors"

var (
	ErrNotFound   = errors.New("project not found")
	ErrValidation = errors.New("missing required field")
)
