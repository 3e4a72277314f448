package apperr

import "errors"

var (
	ErrFindings        = errors.New("documentation check failed")
	ErrInvalidEncoding = errors.New("invalid utf-8")
	ErrNotRegularFile  = errors.New("not a regular file")
)
